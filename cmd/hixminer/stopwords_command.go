package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hixminer/internal/language"
	"hixminer/internal/stopwords"
)

func newStopwordsCommand(ctx *commandContext) *cobra.Command {
	var languages []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Print the stopwords removed from the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			langs := language.NormalizeList(firstNonEmptySlice(languages, cfg.Stopwords.Languages))
			set, err := stopwords.Resolve(stopwords.Options{
				Languages: langs,
				Extra:     cfg.Stopwords.Extra,
				File:      cfg.Stopwords.File,
			})
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, set.Words())
			}

			names := make([]string, len(langs))
			for i, lang := range langs {
				names[i] = language.DisplayName(lang)
			}
			out := cmd.OutOrStdout()
			label := strings.Join(names, ", ")
			if label == "" {
				label = "no built-in list"
			}
			fmt.Fprintf(out, "%d stopwords (%s)\n", set.Len(), label)
			for _, w := range set.Words() {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&languages, "language", nil, fmt.Sprintf("Stopword languages; built-in: %s", strings.Join(stopwords.Languages(), ", ")))
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print stopwords as a JSON array")
	return cmd
}
