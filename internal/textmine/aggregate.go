package textmine

import (
	"hixminer/internal/stopwords"
	"hixminer/internal/table"
)

// DefaultIDColumn names the identifier column when the caller sets none.
const DefaultIDColumn = "patient_id"

// Record is one input row: an opaque identifier and the note text.
type Record struct {
	ID   table.Value
	Text table.Value
}

// MatchRow holds a record's identifier and one 0/1 flag per keyword column.
type MatchRow struct {
	ID    table.Value
	Flags []int
}

// ResultTable has one row per input record. Its columns are the identifier
// column followed by one column per normalized keyword.
type ResultTable struct {
	IDColumn string
	Keywords []string
	Rows     []MatchRow
}

// Columns returns the header in output order.
func (t *ResultTable) Columns() []string {
	cols := make([]string, 0, len(t.Keywords)+1)
	cols = append(cols, t.IDColumn)
	return append(cols, t.Keywords...)
}

// Len returns the number of rows.
func (t *ResultTable) Len() int { return len(t.Rows) }

// MatchCounts returns, per keyword column, how many rows flagged it.
func (t *ResultTable) MatchCounts() []int {
	counts := make([]int, len(t.Keywords))
	for _, row := range t.Rows {
		for i, flag := range row.Flags {
			counts[i] += flag
		}
	}
	return counts
}

// ToTable converts the result into the generic form sinks write.
func (t *ResultTable) ToTable() *table.Table {
	out := &table.Table{Columns: t.Columns(), Rows: make([][]table.Value, len(t.Rows))}
	for i, row := range t.Rows {
		cells := make([]table.Value, 0, len(row.Flags)+1)
		cells = append(cells, row.ID)
		for _, flag := range row.Flags {
			cells = append(cells, table.Number(float64(flag)))
		}
		out.Rows[i] = cells
	}
	return out
}

type aggregateConfig struct {
	idColumn  string
	stopwords stopwords.Set
}

// AggregateOption customizes Aggregate.
type AggregateOption func(*aggregateConfig)

// WithIDColumn names the identifier column of the result.
func WithIDColumn(name string) AggregateOption {
	return func(c *aggregateConfig) {
		if name != "" {
			c.idColumn = name
		}
	}
}

// WithStopwords removes the given stopwords from the collected corpus.
func WithStopwords(sw stopwords.Set) AggregateOption {
	return func(c *aggregateConfig) { c.stopwords = sw }
}

// Aggregate tokenizes every record once, flags its keywords and appends its
// non-stopword tokens to the corpus. The table always has len(records) rows;
// zero usable keywords leave only the identifier column.
func Aggregate(records []Record, keywords []string, mode Mode, opts ...AggregateOption) (*ResultTable, Corpus) {
	cfg := aggregateConfig{idColumn: DefaultIDColumn}
	for _, opt := range opts {
		opt(&cfg)
	}

	kws := NormalizeKeywords(keywords)
	result := &ResultTable{
		IDColumn: cfg.idColumn,
		Keywords: kws,
		Rows:     make([]MatchRow, 0, len(records)),
	}
	var corpus Corpus

	for _, rec := range records {
		tokens := TokenizeValue(rec.Text)
		flags := make([]int, len(kws))
		if len(kws) > 0 {
			matched := matchTokens(tokens, kws, mode)
			for i, kw := range kws {
				if matched.Has(kw) {
					flags[i] = 1
				}
			}
		}
		result.Rows = append(result.Rows, MatchRow{ID: rec.ID, Flags: flags})

		for _, tok := range tokens {
			if cfg.stopwords.Contains(tok) {
				continue
			}
			corpus.add(tok)
		}
	}
	return result, corpus
}
