package config

import (
	"os"
	"strconv"
	"strings"
)

// Output formats for rendered reports.
const (
	FormatJSON   = "json"
	FormatBinary = "binary"
)

// Encodings for the binary format on a text stream.
const (
	EncodingBase64 = "base64"
	EncodingHex    = "hex"
	EncodingRaw    = "raw"
)

type Config struct {
	Format         string
	BinaryEncoding string
	Verbose        bool
}

// Parse reads the environment. Unknown values fall back to the defaults.
func Parse() Config {
	return Config{
		Format:         oneOf(getString("REPORT_FORMAT", FormatJSON), FormatJSON, FormatJSON, FormatBinary),
		BinaryEncoding: oneOf(getString("REPORT_BINARY_ENCODING", EncodingBase64), EncodingBase64, EncodingBase64, EncodingHex, EncodingRaw),
		Verbose:        getBool("REPORT_VERBOSE", false),
	}
}

// ValidFormat reports whether f names an output format.
func ValidFormat(f string) bool { return f == FormatJSON || f == FormatBinary }

// ValidEncoding reports whether e names a binary encoding.
func ValidEncoding(e string) bool {
	return e == EncodingBase64 || e == EncodingHex || e == EncodingRaw
}

func oneOf(v, def string, allowed ...string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
