package main

import (
	"log"
	"os"

	"example.com/deprecationreport/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("deprecation-report: ")
	if err := cli.Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
