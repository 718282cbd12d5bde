package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/ogp"
)

func newValidateCmd() *cobra.Command {
	var opt ogp.ValidateOpt
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate YAML documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			docs, err := loadDocuments(cmd, args[0])
			if err != nil {
				return err
			}
			for i, doc := range docs {
				if err := doc.ValidateWith(opt); err != nil {
					if iss, ok := ogp.AsIssues(err); ok {
						it := iss.First()
						logger.Error("invalid document", "index", i, "code", it.Code, "path", it.Path)
					}
					return fmt.Errorf("document %d: %w", i, err)
				}
				logger.Info("valid", "index", i, "type", doc.Kind())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d document(s) valid\n", len(docs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&opt.StrictImageExtensions, "strict-images", false, "require a known image file extension")
	return cmd
}
