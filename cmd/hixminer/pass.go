package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"hixminer/internal/config"
	"hixminer/internal/logging"
	"hixminer/internal/stopwords"
	"hixminer/internal/table"
	"hixminer/internal/textmine"
)

// passFlags are the input flags shared by extract and cloud.
type passFlags struct {
	file       string
	sheet      string
	idColumn   string
	textColumn string
	keywords   []string
	mode       textmine.Mode
	substring  bool
	languages  []string
	allowEmpty bool
}

func (f *passFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Input workbook, CSV/TSV or SQLite file (default input.file)")
	flags.StringVarP(&f.sheet, "sheet", "s", "", "Sheet or table to read (default: \"VPK Rapportage\" or the first sheet)")
	flags.StringVar(&f.idColumn, "id-column", "", "Identifier column (default input.id_column)")
	flags.StringVar(&f.textColumn, "text-column", "", "Free-text column (default input.text_column)")
	flags.StringSliceVarP(&f.keywords, "keywords", "k", nil, "Comma-separated keywords (default keywords.terms)")
	flags.Var(&f.mode, "mode", "Match mode: whole_word or substring (default keywords.mode)")
	flags.BoolVar(&f.substring, "substring", false, "Shorthand for --mode substring")
	flags.StringSliceVar(&f.languages, "stopwords-language", nil, "Stopword languages (default stopwords.languages)")
}

type pass struct {
	ctx       context.Context
	cfg       *config.Config
	logger    *slog.Logger
	source    string
	mode      textmine.Mode
	stopwords stopwords.Set
	result    *textmine.Result
}

// runPass resolves flags against the configuration, loads the source and
// runs keyword extraction over the chosen sheet.
func runPass(cmd *cobra.Command, cc *commandContext, flags *passFlags) (*pass, error) {
	r, err := cc.newRun(cmd)
	if err != nil {
		return nil, err
	}
	ctx, cfg, logger := r.ctx, r.cfg, r.logger

	req, err := buildRequest(cmd, cfg, flags)
	if err != nil {
		return nil, err
	}

	if len(textmine.NormalizeKeywords(req.Keywords)) == 0 && !flags.allowEmpty {
		if err := confirmEmptyKeywords(cmd); err != nil {
			return nil, err
		}
	}

	path := firstNonEmpty(flags.file, cfg.Input.File)
	if path == "" {
		return nil, errors.New("no input file: pass --file or set input.file in the config")
	}
	if path, err = config.ExpandPath(path); err != nil {
		return nil, fmt.Errorf("resolve input path: %w", err)
	}

	sw, err := stopwords.Resolve(stopwords.Options{
		Languages: firstNonEmptySlice(flags.languages, cfg.Stopwords.Languages),
		Extra:     cfg.Stopwords.Extra,
		File:      cfg.Stopwords.File,
	})
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	req.Stopwords = sw

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("opening source", logging.String(logging.FieldSource, path))
	src, err := table.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result, err := textmine.NewProcessor(logger).Process(src, req)
	if err != nil {
		logging.ErrorWithContext(logger, "keyword extraction failed", "extract_failed",
			logging.String(logging.FieldSource, path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, errorHint(err)),
		)
		return nil, err
	}

	return &pass{
		ctx:       ctx,
		cfg:       cfg,
		logger:    logger,
		source:    path,
		mode:      req.Mode,
		stopwords: sw,
		result:    result,
	}, nil
}

func buildRequest(cmd *cobra.Command, cfg *config.Config, flags *passFlags) (textmine.Request, error) {
	req := textmine.Request{
		Sheet:      firstNonEmpty(flags.sheet, cfg.Input.Sheet),
		IDColumn:   firstNonEmpty(flags.idColumn, cfg.Input.IDColumn),
		TextColumn: firstNonEmpty(flags.textColumn, cfg.Input.TextColumn),
		Keywords:   cfg.Keywords.Terms,
	}
	if cmd.Flags().Changed("keywords") {
		req.Keywords = flags.keywords
	}

	mode, err := textmine.ParseMode(cfg.Keywords.Mode)
	if err != nil {
		return req, err
	}
	if cmd.Flags().Changed("mode") {
		mode = flags.mode
	}
	if flags.substring {
		mode = textmine.Substring
	}
	req.Mode = mode
	return req, nil
}

func errorHint(err error) string {
	var schemaErr *textmine.SchemaError
	var readErr *table.ReadError
	switch {
	case errors.As(err, &schemaErr):
		return "check --id-column/--text-column against the available columns; `hixminer sheets` lists them"
	case errors.Is(err, table.ErrSheetNotFound):
		return "run `hixminer sheets <file>` to list sheet names"
	case errors.As(err, &readErr):
		return "check that the input file exists and is a supported format"
	default:
		return "check logs for details"
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptySlice(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
