package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hixminer/internal/config"
	"hixminer/internal/table"
)

type sheetInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
	Default bool     `json:"default"`
}

func newSheetsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "sheets [file]",
		Short: "List the sheets and columns of an input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.Input.File
			if len(args) == 1 {
				path = args[0]
			}
			if strings.TrimSpace(path) == "" {
				return errors.New("no input file: pass a path or set input.file in the config")
			}
			if path, err = config.ExpandPath(path); err != nil {
				return err
			}

			infos, err := inspectSheets(path)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, infos)
			}

			rows := make([][]string, len(infos))
			for i, info := range infos {
				marker := ""
				if info.Default {
					marker = "*"
				}
				rows[i] = []string{marker, info.Name, strconv.Itoa(info.Rows), strings.Join(info.Columns, ", ")}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tableView{
				headers: []string{"", "Sheet", "Rows", "Columns"},
				rows:    rows,
				aligns:  []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				color:   shouldColorize(out),
			}.render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print sheets as JSON")
	return cmd
}

func inspectSheets(path string) ([]sheetInfo, error) {
	src, err := table.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	names, err := src.SheetNames()
	if err != nil {
		return nil, err
	}
	pick := table.PickSheet(names, "")
	infos := make([]sheetInfo, 0, len(names))
	for _, name := range names {
		sheet, err := src.ReadSheet(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, sheetInfo{
			Name:    name,
			Columns: sheet.Columns,
			Rows:    len(sheet.Rows),
			Default: name == pick,
		})
	}
	return infos, nil
}
