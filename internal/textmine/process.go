package textmine

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"hixminer/internal/logging"
	"hixminer/internal/stopwords"
	"hixminer/internal/table"
)

// Request describes one keyword-extraction pass over a sheet.
type Request struct {
	// Sheet to load; empty picks table.DefaultSheetGuess or the first sheet.
	Sheet      string
	Keywords   []string
	IDColumn   string
	TextColumn string
	Mode       Mode
	Stopwords  stopwords.Set
}

// Result is everything a pass produces. The caller owns it.
type Result struct {
	Sheet    string
	Table    *ResultTable
	Corpus   Corpus
	Records  int
	Warnings []Warning
}

// Processor runs passes and reports them to its logger.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor returns a Processor logging through logger. A nil logger
// discards output.
func NewProcessor(logger *slog.Logger) *Processor {
	return &Processor{logger: logging.NewComponentLogger(logger, "textmine")}
}

// Process runs a pass with a silent Processor.
func Process(src table.Source, req Request) (*Result, error) {
	return NewProcessor(nil).Process(src, req)
}

// Process loads the requested sheet from src, checks that both configured
// columns exist and aggregates every row. Read failures surface as
// *table.ReadError and missing columns as *SchemaError; both stop the pass
// before any row is processed.
func (p *Processor) Process(src table.Source, req Request) (*Result, error) {
	started := time.Now()

	sheetName := strings.TrimSpace(req.Sheet)
	if sheetName == "" {
		names, err := src.SheetNames()
		if err != nil {
			return nil, err
		}
		sheetName = table.PickSheet(names, "")
		if sheetName == "" {
			return nil, &table.ReadError{Err: errors.New("source contains no sheets")}
		}
	}
	logger := p.logger.With(logging.String(logging.FieldSheet, sheetName))

	sheet, err := src.ReadSheet(sheetName)
	if err != nil {
		return nil, err
	}
	logger.Debug("sheet loaded",
		logging.Int("rows", len(sheet.Rows)),
		logging.Int("columns", len(sheet.Columns)),
	)

	idIdx, idOK := sheet.ColumnIndex(req.IDColumn)
	textIdx, textOK := sheet.ColumnIndex(req.TextColumn)
	if !idOK || !textOK {
		schemaErr := &SchemaError{Sheet: sheetName, Available: append([]string(nil), sheet.Columns...)}
		if !idOK {
			schemaErr.Missing = append(schemaErr.Missing, req.IDColumn)
		}
		if !textOK {
			schemaErr.Missing = append(schemaErr.Missing, req.TextColumn)
		}
		return nil, schemaErr
	}

	records := make([]Record, len(sheet.Rows))
	for i, row := range sheet.Rows {
		records[i] = Record{ID: row[idIdx], Text: row[textIdx]}
	}

	result := &Result{Sheet: sheetName, Records: len(records)}
	if len(NormalizeKeywords(req.Keywords)) == 0 {
		result.Warnings = append(result.Warnings, WarnNoKeywords)
		logging.WarnWithContext(logger, "no usable keywords configured", "no_keywords",
			logging.String(logging.FieldErrorHint, "pass --keywords or set keywords.terms in the config"),
			logging.String(logging.FieldImpact, "result table contains only the identifier column"),
		)
	}

	result.Table, result.Corpus = Aggregate(records, req.Keywords, req.Mode,
		WithIDColumn(req.IDColumn),
		WithStopwords(req.Stopwords),
	)

	matchedRows := 0
	for _, row := range result.Table.Rows {
		for _, flag := range row.Flags {
			if flag == 1 {
				matchedRows++
				break
			}
		}
	}
	logger.Info("keyword extraction complete",
		logging.Int("records", result.Records),
		logging.Int("keywords", len(result.Table.Keywords)),
		logging.Int("matched_records", matchedRows),
		logging.Int("corpus_tokens", result.Corpus.Len()),
		logging.String("mode", req.Mode.String()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}
