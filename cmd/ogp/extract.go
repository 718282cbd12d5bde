package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/ogp"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract FILE",
		Short: "Print the meta property/content pairs of an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			props, err := ogp.ParseHTML(bytes.NewReader(data))
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("extracted", "count", len(props))
			for _, p := range props {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Path, p.Content)
			}
			return nil
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported og:type values",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range ogp.ObjectTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
		},
	}
}
