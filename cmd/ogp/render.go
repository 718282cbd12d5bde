package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/ogp"
)

func newRenderCmd() *cobra.Command {
	var (
		opt      ogp.RenderOpt
		validate bool
		vopt     ogp.ValidateOpt
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render YAML documents as meta tags (FILE may be - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			docs, err := loadDocuments(cmd, args[0])
			if err != nil {
				return err
			}
			for i, doc := range docs {
				if validate {
					if err := doc.ValidateWith(vopt); err != nil {
						logger.Error("invalid document", "index", i, "type", doc.Kind(), "err", err)
						return err
					}
				}
				if err := opt.Write(cmd.OutOrStdout(), doc); err != nil {
					return err
				}
				logger.Debug("rendered", "index", i, "type", doc.Kind())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opt.Separator, "separator", ":", "separator between nested keys")
	cmd.Flags().StringVar(&opt.Indent, "indent", "", "prefix written before each tag")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate each document before rendering")
	cmd.Flags().BoolVar(&vopt.StrictImageExtensions, "strict-images", false, "require a known image file extension")
	return cmd
}
