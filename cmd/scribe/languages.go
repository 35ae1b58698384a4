package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odvcencio/scribe/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their file extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, def := range language.All() {
				if _, err := fmt.Fprintf(out, "%-12s %s\n", def.ID, strings.Join(def.Extensions, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
