package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"example.com/deprecationreport/internal/codec"
	"example.com/deprecationreport/internal/config"
	"example.com/deprecationreport/internal/domain"
	"example.com/deprecationreport/internal/reportfile"
)

type renderOptions struct {
	file     string
	id       string
	removal  string
	message  string
	source   string
	line     int64
	column   int64
	format   string
	encoding string
	verbose  bool
}

func newRenderCmd(cfg config.Config) *cobra.Command {
	opts := renderOptions{format: cfg.Format, encoding: cfg.BinaryEncoding, verbose: cfg.Verbose}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a deprecation report and print its payload",
		Long: `Build a deprecation report from flags or a YAML file and print it.

With --format json the report is printed as the JSON payload for a reporting
endpoint. With --format binary the framed binary form is printed, encoded
according to --encoding.`,
		Example: `  deprecation-report render --id FeatureX --removal 2025-06-01 --message "FeatureX will be removed"
  deprecation-report render -f report.yaml --format binary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.ValidFormat(opts.format) {
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, config.FormatJSON, config.FormatBinary)
			}
			if opts.format == config.FormatBinary && !config.ValidEncoding(opts.encoding) {
				return fmt.Errorf("unknown encoding %q", opts.encoding)
			}
			body, err := buildBody(cmd, opts)
			if err != nil {
				return err
			}
			if opts.verbose {
				log.Printf("[render] built report: type=%s id=%q format=%s", body.Type(), body.ID(), opts.format)
			}
			return writeBody(cmd.OutOrStdout(), body, opts.format, opts.encoding)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "read the report from a YAML file")
	f.StringVar(&opts.id, "id", "", "deprecated feature id")
	f.StringVar(&opts.removal, "removal", "", "anticipated removal (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&opts.message, "message", "", "human readable message")
	f.StringVar(&opts.source, "source-file", "", "URL or path of the triggering source")
	f.Int64Var(&opts.line, "line", 0, "line number in the source file")
	f.Int64Var(&opts.column, "column", 0, "column number in the source file")
	f.StringVar(&opts.format, "format", opts.format, "output format: json or binary")
	f.StringVar(&opts.encoding, "encoding", opts.encoding, "binary encoding: base64, hex or raw")
	f.BoolVarP(&opts.verbose, "verbose", "v", opts.verbose, "log progress to stderr")
	return cmd
}

// buildBody turns flags into a report input so flags and YAML files share the
// same presence and range checks. Only flags that were set count as present.
func buildBody(cmd *cobra.Command, opts renderOptions) (*domain.DeprecationReportBody, error) {
	if opts.file != "" {
		return reportfile.Load(opts.file)
	}

	flags := cmd.Flags()
	var in domain.ReportInput
	if flags.Changed("id") {
		in.ID = &opts.id
	}
	if flags.Changed("removal") {
		in.AnticipatedRemoval = &opts.removal
	}
	if flags.Changed("message") {
		in.Message = &opts.message
	}
	if flags.Changed("source-file") {
		in.SourceFile = &opts.source
	}
	if flags.Changed("line") {
		in.LineNumber = &opts.line
	}
	if flags.Changed("column") {
		in.ColumnNumber = &opts.column
	}

	body, errs := in.Build()
	if len(errs) > 0 {
		return nil, domain.FieldErrors(errs)
	}
	return body, nil
}

func writeBody(w io.Writer, body domain.ReportBody, format, encoding string) error {
	switch format {
	case config.FormatJSON:
		_, err := fmt.Fprintf(w, "%s\n", body.ReportFormData())
		return err
	case config.FormatBinary:
		var buf bytes.Buffer
		if err := codec.EncodeReportBody(&buf, body); err != nil {
			return err
		}
		return writeEncoded(w, buf.Bytes(), encoding)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, config.FormatJSON, config.FormatBinary)
	}
}

func writeEncoded(w io.Writer, data []byte, encoding string) error {
	var err error
	switch encoding {
	case config.EncodingBase64:
		_, err = fmt.Fprintln(w, base64.StdEncoding.EncodeToString(data))
	case config.EncodingHex:
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
	case config.EncodingRaw:
		_, err = w.Write(data)
	default:
		err = fmt.Errorf("unknown encoding %q", encoding)
	}
	return err
}
