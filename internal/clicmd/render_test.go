package clicmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwatts/anytype-go/pkg/pluginvalue"
)

func sampleRecords() []pluginvalue.Record {
	return []pluginvalue.Record{
		{
			{Key: "_type", Value: "space"},
			{Key: "id", Value: "sp1"},
			{Key: "name", Value: "Work"},
		},
		{
			{Key: "_type", Value: "space"},
			{Key: "id", Value: "sp2"},
			{Key: "name", Value: "Personal"},
		},
	}
}

func TestRenderRecords_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRecords(&buf, "json", sampleRecords()); err != nil {
		t.Fatalf("RenderRecords: %v", err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0]["name"] != "Work" {
		t.Fatalf("expected first doc name Work, got %v", docs[0]["name"])
	}
}

func TestRenderRecords_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRecords(&buf, "table", sampleRecords()); err != nil {
		t.Fatalf("RenderRecords: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Work") || !strings.Contains(out, "Personal") {
		t.Fatalf("expected table output to contain both record names, got:\n%s", out)
	}
}

func TestRenderRecords_UnknownFormatFallsBackToTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRecords(&buf, "yaml", sampleRecords()); err != nil {
		t.Fatalf("RenderRecords: %v", err)
	}
	if !strings.Contains(buf.String(), "Work") {
		t.Fatalf("expected fallback table rendering, got:\n%s", buf.String())
	}
}

func TestRenderRecords_EmptyPrintsPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRecords(&buf, "table", nil); err != nil {
		t.Fatalf("RenderRecords: %v", err)
	}
	if !strings.Contains(buf.String(), "no records") {
		t.Fatalf("expected placeholder text, got:\n%s", buf.String())
	}
}
