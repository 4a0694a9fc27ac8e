package cli

import (
	"github.com/spf13/cobra"

	"example.com/deprecationreport/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "deprecation-report",
		Short:         "Render and decode deprecation report bodies",
		Long:          "deprecation-report builds deprecation report bodies and renders them as the JSON payload sent to reporting endpoints or as the binary form used between processes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd(cfg))
	cmd.AddCommand(newDecodeCmd(cfg))
	return cmd
}

// NewRootCmdForTest returns the root command with default configuration.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd(config.Config{
		Format:         config.FormatJSON,
		BinaryEncoding: config.EncodingBase64,
	})
}

func Execute() error {
	return newRootCmd(config.Parse()).Execute()
}
