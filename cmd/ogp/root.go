package main

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/ogp"
	"github.com/reoring/ogp/i18n"
)

var version = "dev"

// newRootCmd builds the command tree. Output goes to cmd.OutOrStdout and
// logs to cmd.ErrOrStderr, so tests can capture both.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		lang    string
	)
	root := &cobra.Command{
		Use:           "ogp",
		Short:         "Build, validate and extract Open Graph meta tags",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
			if lang != "" {
				i18n.SetLanguage(lang)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&lang, "lang", "", "language of error messages (en, ja)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newTypesCmd())
	return root
}

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

// loadDocuments reads and builds every YAML document of name.
func loadDocuments(cmd *cobra.Command, name string) ([]ogp.Document, error) {
	logger := loggerFromContext(cmd.Context())
	data, err := readInput(cmd, name)
	if err != nil {
		return nil, err
	}
	docs, err := ogp.LoadYAML(data)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded documents", "file", name, "count", len(docs))
	return docs, nil
}
