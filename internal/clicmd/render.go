// Package clicmd is the CLI/shell host surface: it turns plugincmd
// Records into terminal output and wires an interactive shell the way
// kagent's cli/cmd/kagent/main.go wires cobra subcommands and an ishell
// REPL on top of its own internal/cli package.
package clicmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

// maxCellWidth bounds a single table cell before reflow wraps it, so a
// long object snippet doesn't blow out the terminal width.
const maxCellWidth = 60

// RenderRecords writes recs to w in the requested format ("table" or
// "json"); an unrecognized format falls back to table, matching the
// teacher's output-format flag semantics (spec §6.5).
func RenderRecords(w io.Writer, format string, recs []pluginvalue.Record) error {
	if format == "json" {
		return renderJSON(w, recs)
	}
	return renderTable(w, recs)
}

func renderJSON(w io.Writer, recs []pluginvalue.Record) error {
	docs := make([]map[string]any, len(recs))
	for i, r := range recs {
		doc := make(map[string]any, len(r))
		for _, f := range r {
			doc[f.Key] = f.Value
		}
		docs[i] = doc
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

func renderTable(w io.Writer, recs []pluginvalue.Record) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, color.YellowString("no records"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := make(table.Row, len(recs[0]))
	for i, f := range recs[0] {
		header[i] = f.Key
	}
	t.AppendHeader(header)

	for _, r := range recs {
		row := make(table.Row, len(r))
		for i, f := range r {
			row[i] = wordwrap.String(fmt.Sprintf("%v", f.Value), maxCellWidth)
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}
