package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hixminer/internal/cloud"
	"hixminer/internal/config"
	"hixminer/internal/fileutil"
	"hixminer/internal/logging"
	"hixminer/internal/textmine"
)

const defaultCloudImage = "wordcloud.png"

type cloudReport struct {
	Source string               `json:"source"`
	Sheet  string               `json:"sheet"`
	Tokens int                  `json:"tokens"`
	Top    []textmine.WordCount `json:"top"`
	Image  string               `json:"image,omitempty"`
}

func newCloudCommand(ctx *commandContext) *cobra.Command {
	var flags passFlags
	var image string
	var top int
	var noImage bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "cloud",
		Short: "Render a word cloud from the stopword-filtered corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.allowEmpty = true
			p, err := runPass(cmd, ctx, &flags)
			if err != nil {
				return err
			}

			corpus, err := textmine.FilterStopwords(p.result.Corpus, p.stopwords)
			if err != nil {
				if errors.Is(err, textmine.ErrEmptyCorpus) {
					logging.WarnWithContext(p.logger, "corpus is empty after stopword filtering", "empty_corpus",
						logging.String(logging.FieldSheet, p.result.Sheet),
						logging.String(logging.FieldErrorHint, "check the text column or relax the stopword list"),
						logging.String(logging.FieldImpact, "no word cloud was rendered"),
					)
				}
				return err
			}

			var target string
			if !noImage {
				target = firstNonEmpty(image, p.cfg.Cloud.Path, defaultCloudImage)
				if target, err = config.ExpandPath(target); err != nil {
					return fmt.Errorf("resolve image path: %w", err)
				}
				if err := renderCloud(target, p.cfg, corpus); err != nil {
					return err
				}
				p.logger.Info("word cloud written",
					logging.String(logging.FieldOutput, target),
					logging.Int("distinct_words", len(corpus.Frequencies())),
				)
			}

			if jsonOut {
				return writeJSON(cmd, cloudReport{
					Source: p.source,
					Sheet:  p.result.Sheet,
					Tokens: corpus.Len(),
					Top:    corpus.Top(top),
					Image:  target,
				})
			}

			out := cmd.OutOrStdout()
			if top > 0 {
				fmt.Fprintln(out, topWordsView(corpus.Top(top), shouldColorize(out)).render())
			}
			if target != "" {
				fmt.Fprintf(out, "Wrote word cloud to %s\n", target)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&image, "image", "i", "", "PNG destination (default cloud.path or "+defaultCloudImage+")")
	cmd.Flags().IntVar(&top, "top", 10, "Print the N most frequent words; 0 prints none")
	cmd.Flags().BoolVar(&noImage, "no-image", false, "Only print word frequencies")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print frequencies as JSON")
	return cmd
}

func renderCloud(target string, cfg *config.Config, corpus textmine.Corpus) error {
	background, err := config.ParseColor(cfg.Cloud.Background)
	if err != nil {
		return fmt.Errorf("cloud.background: %w", err)
	}
	var renderer cloud.Renderer = cloud.New(cloud.Options{
		Width:      cfg.Cloud.Width,
		Height:     cfg.Cloud.Height,
		MaxWords:   cfg.Cloud.MaxWords,
		Background: background,
	})
	img, err := renderer.Render(corpus.Top(cfg.Cloud.MaxWords))
	if err != nil {
		return err
	}
	release, err := fileutil.Lock(target)
	if err != nil {
		return err
	}
	defer release()
	return cloud.WritePNG(target, img)
}

func topWordsView(words []textmine.WordCount, colorize bool) tableView {
	rows := make([][]string, len(words))
	for i, wc := range words {
		rows[i] = []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)}
	}
	return tableView{
		headers: []string{"#", "Word", "Count"},
		rows:    rows,
		aligns:  []columnAlignment{alignRight, alignLeft, alignRight},
		color:   colorize,
	}
}
