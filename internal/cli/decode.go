package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"example.com/deprecationreport/internal/codec"
	"example.com/deprecationreport/internal/config"
)

func newDecodeCmd(cfg config.Config) *cobra.Command {
	encoding := cfg.BinaryEncoding
	verbose := cfg.Verbose

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a binary report and print its JSON payload",
		Long: `Decode a framed binary report, read from file or stdin, and print
the JSON payload it renders to. A report that cannot be decoded is dropped
and the command fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			raw, err := readEncoded(in, encoding)
			if err != nil {
				return err
			}
			body, err := codec.DecodeReportBody(bytes.NewReader(raw))
			if err != nil {
				if verbose {
					log.Printf("[decode] dropped report: %v", err)
				}
				return fmt.Errorf("report dropped: %w", err)
			}
			if verbose {
				log.Printf("[decode] decoded report: type=%s bytes=%d", body.Type(), len(raw))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", body.ReportFormData())
			return err
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", encoding, "binary encoding: base64, hex or raw")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", verbose, "log progress to stderr")
	return cmd
}

func readEncoded(r io.Reader, encoding string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if !config.ValidEncoding(encoding) {
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
	if encoding == config.EncodingRaw {
		return data, nil
	}

	text := string(bytes.TrimSpace(data))
	var out []byte
	if encoding == config.EncodingHex {
		out, err = hex.DecodeString(text)
	} else {
		out, err = base64.StdEncoding.DecodeString(text)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s input: %w", encoding, err)
	}
	return out, nil
}
