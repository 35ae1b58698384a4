package main

import (
	"encoding/json"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/scribe/editor"
	"github.com/odvcencio/scribe/highlight"
	"github.com/odvcencio/scribe/language"
)

type fileHighlights struct {
	File     string                     `json:"file"`
	Language language.ID                `json:"language"`
	Ranges   []highlight.HighlightRange `json:"ranges"`
}

func newHighlightCommand() *cobra.Command {
	var lang string
	var flatten bool
	cmd := &cobra.Command{
		Use:   "highlight FILE...",
		Short: "Print highlight ranges for files as JSON, one object per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]fileHighlights, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.NumCPU())
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					res, err := highlightFile(path, lang, flatten)
					if err != nil {
						return err
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, res := range results {
				if err := enc.Encode(res); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "language", "l", "", "language to highlight as (default: detect from the file)")
	cmd.Flags().BoolVar(&flatten, "flatten", false, "resolve overlapping ranges by token priority")
	return cmd
}

func highlightFile(path, lang string, flatten bool) (fileHighlights, error) {
	buf := editor.NewBuffer()
	if err := buf.Open(path); err != nil {
		return fileHighlights{}, err
	}
	id := fileLanguage(path, buf.Text(), lang)
	ranges := highlight.Highlight(buf.Text(), id)
	if flatten {
		ranges = highlight.Flatten(ranges)
	}
	if ranges == nil {
		ranges = []highlight.HighlightRange{}
	}
	log.Debug("Highlighted %s as %s: %d ranges", path, id, len(ranges))
	return fileHighlights{File: path, Language: id, Ranges: ranges}, nil
}

// fileLanguage resolves an explicit language name, falling back to detection
// from the path and first line.
func fileLanguage(path, text, lang string) language.ID {
	if lang != "" {
		id, ok := language.Parse(lang)
		if !ok {
			log.Warning("Unknown language %q, using plain text", lang)
		}
		return id
	}
	return language.DetectContent(path, text)
}
