package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hixminer/internal/config"
	"hixminer/internal/fileutil"
	"hixminer/internal/logging"
	"hixminer/internal/table"
	"hixminer/internal/textmine"
)

type extractReport struct {
	Source      string             `json:"source"`
	Sheet       string             `json:"sheet"`
	Records     int                `json:"records"`
	Mode        textmine.Mode      `json:"mode"`
	Columns     []string           `json:"columns"`
	MatchCounts map[string]int     `json:"match_counts"`
	Rows        [][]table.Value    `json:"rows,omitempty"`
	Warnings    []textmine.Warning `json:"warnings,omitempty"`
	Output      string             `json:"output,omitempty"`
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var flags passFlags
	var output string
	var jsonOut bool
	var showRows bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Flag keywords per record and write the result table",
		Long: `Reads the configured sheet, marks which keywords occur in every record's
free-text column and writes one row per record: the identifier followed by a
0/1 column per keyword. The output format follows the file extension
(.xlsx, .csv, .tsv, .db).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runPass(cmd, ctx, &flags)
			if err != nil {
				return err
			}
			result := p.result

			target := firstNonEmpty(output, p.cfg.Output.Path)
			if target != "" {
				if target, err = config.ExpandPath(target); err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := writeResultTable(target, p.cfg, result.Table.ToTable()); err != nil {
					return err
				}
				p.logger.Info("result table written",
					logging.String(logging.FieldOutput, target),
					logging.Int("rows", result.Table.Len()),
				)
			}

			if jsonOut {
				report := extractReport{
					Source:      p.source,
					Sheet:       result.Sheet,
					Records:     result.Records,
					Mode:        p.mode,
					Columns:     result.Table.Columns(),
					MatchCounts: matchCounts(result.Table),
					Warnings:    result.Warnings,
					Output:      target,
				}
				if showRows {
					report.Rows = result.Table.ToTable().Rows
				}
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "Warning: %s\n", w)
			}
			fmt.Fprintf(out, "Sheet %q: %d records\n", result.Sheet, result.Records)
			if len(result.Table.Keywords) > 0 {
				fmt.Fprintln(out, summaryView(result.Table, colorize).render())
			}
			if showRows {
				fmt.Fprintln(out, rowsView(result.Table, colorize).render())
			}
			if target != "" {
				fmt.Fprintf(out, "Wrote %d rows to %s\n", result.Table.Len(), target)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&flags.allowEmpty, "allow-empty-keywords", false, "Run without keywords instead of asking for confirmation")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result table here (default output.path)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&showRows, "rows", false, "Include every result row in the output")
	return cmd
}

// writeResultTable replaces target while holding its lock file.
func writeResultTable(target string, cfg *config.Config, t *table.Table) error {
	sink, err := table.SinkFor(target, table.SinkOptions{
		SheetName: cfg.Output.SheetName,
		TableName: cfg.Output.Table,
	})
	if err != nil {
		return err
	}
	release, err := fileutil.Lock(target)
	if err != nil {
		return err
	}
	defer release()
	if err := sink.Write(target, t); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func matchCounts(rt *textmine.ResultTable) map[string]int {
	counts := rt.MatchCounts()
	out := make(map[string]int, len(counts))
	for i, kw := range rt.Keywords {
		out[kw] = counts[i]
	}
	return out
}

func summaryView(rt *textmine.ResultTable, colorize bool) tableView {
	counts := rt.MatchCounts()
	rows := make([][]string, len(rt.Keywords))
	for i, kw := range rt.Keywords {
		share := "-"
		if rt.Len() > 0 {
			share = fmt.Sprintf("%.1f%%", 100*float64(counts[i])/float64(rt.Len()))
		}
		rows[i] = []string{kw, strconv.Itoa(counts[i]), share}
	}
	return tableView{
		headers: []string{"Keyword", "Records", "Share"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignRight, alignRight},
		color:   colorize,
	}
}

func rowsView(rt *textmine.ResultTable, colorize bool) tableView {
	t := rt.ToTable()
	rows := make([][]string, len(t.Rows))
	aligns := make([]columnAlignment, len(t.Columns))
	for i := 1; i < len(aligns); i++ {
		aligns[i] = alignRight
	}
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = v.String()
		}
		rows[i] = cells
	}
	return tableView{headers: t.Columns, rows: rows, aligns: aligns, color: colorize}
}
