package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/datadash-cli/internal/analysis"
)

func sampleInputs() (Meta, []string, analysis.SummaryStats) {
	meta := Meta{
		RunID:       "run-123",
		GeneratedAt: time.Date(2026, 8, 23, 12, 30, 0, 0, time.UTC),
		Rows:        100,
		Columns:     []string{"Date", "Sales", "Customers", "Product_Category"},
	}
	order := []string{"Sales", "Customers"}
	stats := analysis.SummaryStats{
		"Sales":     {Mean: 1001.5, Median: 998.25, Std: 199.9, Min: 450.1, Max: 1550.9, Q1: 870.5, Q3: 1130.75},
		"Customers": {Mean: 50.2, Median: 50, Std: 7.1, Min: 33, Max: 70, Q1: 45, Q3: 55},
	}
	return meta, order, stats
}

func TestRender(t *testing.T) {
	meta, order, stats := sampleInputs()
	got := Render(meta, order, stats)

	for _, want := range []string{
		"DATA ANALYSIS REPORT",
		"Generated on: 2026-08-23 12:30:00",
		"Run ID: run-123",
		"Total records: 100",
		"Columns: Date, Sales, Customers, Product_Category",
		"Sales:\n  Mean: 1001.50",
		"  Q3: 1130.75",
		"Customers:\n  Mean: 50.20",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
	// Sales section must precede Customers per column order.
	if strings.Index(got, "Sales:") > strings.Index(got, "Customers:") {
		t.Fatalf("columns out of order:\n%s", got)
	}
}

func TestWriteTextOverwrites(t *testing.T) {
	meta, order, stats := sampleInputs()
	path := filepath.Join(t.TempDir(), "analysis_report.txt")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}
	if err := WriteText(path, meta, order, stats); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if strings.Contains(string(b), "stale") {
		t.Fatal("old content survived overwrite")
	}
	if !strings.Contains(string(b), "Total records: 100") {
		t.Fatalf("report content wrong:\n%s", b)
	}
}

func TestWriteYAML(t *testing.T) {
	meta, order, stats := sampleInputs()
	path := filepath.Join(t.TempDir(), "analysis_summary.yaml")
	if err := WriteYAML(path, meta, order, stats); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read yaml: %v", err)
	}
	var doc struct {
		RunID string `yaml:"run_id"`
		Rows  int    `yaml:"rows"`
		Stats []struct {
			Column string  `yaml:"column"`
			Mean   float64 `yaml:"mean"`
		} `yaml:"stats"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.RunID != "run-123" || doc.Rows != 100 {
		t.Fatalf("meta = %#v", doc)
	}
	if len(doc.Stats) != 2 || doc.Stats[0].Column != "Sales" || doc.Stats[0].Mean != 1001.5 {
		t.Fatalf("stats = %#v", doc.Stats)
	}
}
