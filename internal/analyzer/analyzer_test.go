package analyzer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/datadash-cli/internal/config"
)

func testConfig(t *testing.T) *config.Global {
	t.Helper()
	return &config.Global{
		OutDir:        filepath.Join(t.TempDir(), "outputs"),
		Seed:          42,
		Rows:          100,
		StartDate:     "2024-01-01",
		MAWindow:      7,
		CorrThreshold: 0.5,
		HistBins:      20,
		DPI:           96,
	}
}

func TestStagesWithoutDataWarnAndSkip(t *testing.T) {
	var buf bytes.Buffer
	a := New(testConfig(t), &buf)

	a.BasicStatistics()
	a.CorrelationAnalysis()
	a.TrendAnalysis()
	a.CategoryAnalysis()
	a.GenerateVisualizations()
	a.ExportReport()

	out := buf.String()
	if !strings.Contains(out, "⚠ No data loaded") {
		t.Fatalf("missing warning:\n%s", out)
	}
	if strings.Contains(out, "✓") {
		t.Fatalf("no stage should succeed without data:\n%s", out)
	}
	if len(a.Summary()) != 0 {
		t.Fatalf("summary populated without data: %#v", a.Summary())
	}
}

func TestBasicStatisticsPopulatesSummary(t *testing.T) {
	var buf bytes.Buffer
	a := New(testConfig(t), &buf)
	a.LoadSampleData()
	a.BasicStatistics()

	sum := a.Summary()
	if len(sum) != 2 {
		t.Fatalf("summary columns = %d, want 2", len(sum))
	}
	for _, col := range []string{"Sales", "Customers"} {
		s, ok := sum[col]
		if !ok {
			t.Fatalf("summary missing %s", col)
		}
		if !(s.Min <= s.Q1 && s.Q1 <= s.Median && s.Median <= s.Q3 && s.Q3 <= s.Max) {
			t.Fatalf("%s stats out of order: %#v", col, s)
		}
	}
	if !strings.Contains(buf.String(), "Basic Statistics") {
		t.Fatalf("missing section header:\n%s", buf.String())
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	var buf bytes.Buffer
	a := New(cfg, &buf)
	a.Run()

	out := buf.String()
	if !strings.Contains(out, "✓ Sample data loaded (100 records)") {
		t.Fatalf("missing load confirmation:\n%s", out)
	}
	if strings.Contains(out, "⚠") {
		t.Fatalf("unexpected warning in clean run:\n%s", out)
	}
	for _, want := range []string{
		"Correlation Analysis",
		"Trend Analysis (Moving Average - 7 days)",
		"Overall trend:",
		"Best performing category:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}

	for _, name := range []string{DashboardFile, ReportFile, SummaryFile} {
		if _, err := os.Stat(filepath.Join(cfg.OutDir, name)); err != nil {
			t.Fatalf("output %s missing: %v", name, err)
		}
	}
	rep, err := os.ReadFile(filepath.Join(cfg.OutDir, ReportFile))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(rep), "Total records: 100") {
		t.Fatalf("report row count wrong:\n%s", rep)
	}
}

func TestRunRecreatesOutputDir(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.RemoveAll(cfg.OutDir); err != nil {
		t.Fatalf("remove: %v", err)
	}
	var buf bytes.Buffer
	New(cfg, &buf).Run()
	for _, name := range []string{DashboardFile, ReportFile} {
		if _, err := os.Stat(filepath.Join(cfg.OutDir, name)); err != nil {
			t.Fatalf("output %s missing after dir recreation: %v", name, err)
		}
	}
}

func TestTrendAnalysisShortSeries(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rows = 3 // shorter than the window
	var buf bytes.Buffer
	a := New(cfg, &buf)
	a.LoadSampleData()
	a.TrendAnalysis()
	if !strings.Contains(buf.String(), "⚠ Not enough records") {
		t.Fatalf("missing short-series warning:\n%s", buf.String())
	}
}
