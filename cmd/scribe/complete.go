package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/scribe/completion"
	"github.com/odvcencio/scribe/editor"
)

func newCompleteCommand() *cobra.Command {
	var lang string
	var offset int
	cmd := &cobra.Command{
		Use:   "complete FILE",
		Short: "Print ranked completions at an offset in a file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := editor.NewBuffer()
			if err := buf.Open(args[0]); err != nil {
				return err
			}
			if offset < 0 {
				offset = buf.Len()
			}
			if offset > buf.Len() {
				return fmt.Errorf("offset %d is past the end of %s (%d)", offset, args[0], buf.Len())
			}
			id := fileLanguage(args[0], buf.Text(), lang)
			items := completion.Complete(buf.Text(), offset, id)
			if items == nil {
				items = []completion.Completion{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
	cmd.Flags().StringVarP(&lang, "language", "l", "", "language to complete as (default: detect from the file)")
	cmd.Flags().IntVarP(&offset, "offset", "o", -1, "cursor offset in UTF-16 code units (default: end of file)")
	return cmd
}
