package analyzer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/datadash-cli/internal/analysis"
	"github.com/KaramelBytes/datadash-cli/internal/config"
	"github.com/KaramelBytes/datadash-cli/internal/dataset"
	"github.com/KaramelBytes/datadash-cli/internal/report"
	"github.com/KaramelBytes/datadash-cli/internal/utils"
	"github.com/KaramelBytes/datadash-cli/internal/visual"
)

// Output file names under the configured output directory.
const (
	DashboardFile = "data_analysis_dashboard.png"
	ReportFile    = "analysis_report.txt"
	SummaryFile   = "analysis_summary.yaml"
)

// Analyzer owns the in-memory table and the summary statistics computed
// from it. Stages run sequentially; each one checks its own precondition,
// narrates a warning when it is not met, and returns without failing the
// run.
type Analyzer struct {
	cfg *config.Global
	out io.Writer

	data    *dataset.Table
	summary analysis.SummaryStats
}

// New builds an analyzer around cfg. Status lines go to out (stdout when nil).
func New(cfg *config.Global, out io.Writer) *Analyzer {
	if out == nil {
		out = os.Stdout
	}
	return &Analyzer{cfg: cfg, out: out, summary: analysis.SummaryStats{}}
}

// Data returns the loaded table, nil before LoadSampleData.
func (a *Analyzer) Data() *dataset.Table { return a.data }

// Summary returns the statistics computed by BasicStatistics.
func (a *Analyzer) Summary() analysis.SummaryStats { return a.summary }

func (a *Analyzer) section(title string) {
	fmt.Fprintf(a.out, "\n⚙ %s\n", title)
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
}

func (a *Analyzer) warn(format string, args ...any) {
	fmt.Fprintf(a.out, "⚠ "+format+"\n", args...)
}

func (a *Analyzer) ok(format string, args ...any) {
	fmt.Fprintf(a.out, "✓ "+format+"\n", args...)
}

// LoadSampleData generates the deterministic synthetic table from config.
func (a *Analyzer) LoadSampleData() *dataset.Table {
	opt := dataset.DefaultOptions()
	if a.cfg.Rows > 0 {
		opt.Rows = a.cfg.Rows
	}
	opt.Seed = a.cfg.Seed
	if a.cfg.StartDate != "" {
		start, err := time.Parse("2006-01-02", a.cfg.StartDate)
		if err != nil {
			a.warn("invalid start_date %q, using %s", a.cfg.StartDate, opt.Start.Format("2006-01-02"))
		} else {
			opt.Start = start
		}
	}
	a.data = dataset.Generate(opt)
	a.ok("Sample data loaded (%d records)", a.data.Len())
	return a.data
}

// BasicStatistics computes the per-column summary and replaces any previous
// one wholesale.
func (a *Analyzer) BasicStatistics() {
	if a.data == nil {
		a.warn("No data loaded. Load the sample data first.")
		return
	}
	summary := analysis.SummaryStats{}
	for _, col := range a.data.NumericColumns() {
		summary[col] = analysis.Describe(a.data.NumericColumn(col))
	}
	a.summary = summary

	a.section("Basic Statistics")
	for _, col := range a.data.NumericColumns() {
		s := a.summary[col]
		fmt.Fprintf(a.out, "\n%s:\n", col)
		for _, name := range analysis.StatNames {
			fmt.Fprintf(a.out, "  %s: %.2f\n", name, s.Get(name))
		}
	}
}

// CorrelationAnalysis prints the pairwise Pearson matrix and flags strong
// pairs. The matrix is recomputed on the spot; nothing is retained.
func (a *Analyzer) CorrelationAnalysis() {
	if a.data == nil {
		a.warn("No data loaded. Load the sample data first.")
		return
	}
	m := a.correlationMatrix()

	a.section("Correlation Analysis")
	fmt.Fprintf(a.out, "%-12s", "")
	for _, col := range m.Columns {
		fmt.Fprintf(a.out, "%12s", col)
	}
	fmt.Fprintln(a.out)
	for i, col := range m.Columns {
		fmt.Fprintf(a.out, "%-12s", col)
		for j := range m.Columns {
			fmt.Fprintf(a.out, "%12.3f", m.At(i, j))
		}
		fmt.Fprintln(a.out)
	}
	for _, p := range m.StrongPairs(a.cfg.CorrThreshold) {
		fmt.Fprintf(a.out, "\nStrong correlation (%.3f) between %s and %s\n", p.R, p.A, p.B)
	}
}

// TrendAnalysis smooths the sales series and classifies its direction.
func (a *Analyzer) TrendAnalysis() {
	if a.data == nil {
		a.warn("No data loaded. Load the sample data first.")
		return
	}
	window := a.cfg.MAWindow
	if window <= 0 {
		window = 7
	}
	if a.data.Len() < window {
		a.warn("Not enough records for a %d-day moving average.", window)
		return
	}
	t := analysis.AnalyzeTrend(a.data.Sales(), window)

	a.section(fmt.Sprintf("Trend Analysis (Moving Average - %d days)", window))
	fmt.Fprintf(a.out, "Overall trend: %s\n", t.Direction)
	fmt.Fprintf(a.out, "Average daily sales: %.2f\n", t.MeanSales)
	fmt.Fprintf(a.out, "Sales volatility: %.2f\n", t.Volatility)
}

// CategoryAnalysis aggregates by product category and names the best one.
func (a *Analyzer) CategoryAnalysis() {
	if a.data == nil {
		a.warn("No data loaded. Load the sample data first.")
		return
	}
	sums := analysis.AggregateCategories(a.data.CategoryLabels(), a.data.Sales(), a.data.Customers())
	if len(sums) == 0 {
		a.warn("No category column found for analysis.")
		return
	}

	a.section("Category Analysis")
	for _, s := range sums {
		fmt.Fprintf(a.out, "%-12s count=%-4d sales_sum=%-12.2f sales_mean=%-10.2f customers_sum=%-6d customers_mean=%.2f\n",
			s.Category, s.Count, s.SalesSum, s.SalesMean, s.CustomersSum, s.CustomersMean)
	}
	a.ok("Best performing category: %s", analysis.BestCategory(sums))
}

// GenerateVisualizations renders the four-panel dashboard PNG.
func (a *Analyzer) GenerateVisualizations() {
	if a.data == nil {
		a.warn("No data loaded. Load the sample data first.")
		return
	}
	if err := utils.EnsureOutputDir(a.cfg.OutDir); err != nil {
		a.warn("Cannot create output directory: %v", err)
		return
	}
	path := filepath.Join(a.cfg.OutDir, DashboardFile)
	in := visual.Input{
		Dates:      a.data.Dates(),
		Sales:      a.data.Sales(),
		Corr:       a.correlationMatrix(),
		Categories: analysis.AggregateCategories(a.data.CategoryLabels(), a.data.Sales(), a.data.Customers()),
		Bins:       a.cfg.HistBins,
		DPI:        a.cfg.DPI,
	}
	if err := visual.RenderDashboard(path, in); err != nil {
		a.warn("Visualization failed: %v", err)
		return
	}
	a.ok("Visualizations saved to %s", path)
}

// ExportReport writes the plain-text report and its YAML companion.
func (a *Analyzer) ExportReport() {
	if a.data == nil {
		a.warn("No data loaded. Load the sample data first.")
		return
	}
	if err := utils.EnsureOutputDir(a.cfg.OutDir); err != nil {
		a.warn("Cannot create output directory: %v", err)
		return
	}
	meta := report.Meta{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Rows:        a.data.Len(),
		Columns:     a.data.Columns(),
	}
	txtPath := filepath.Join(a.cfg.OutDir, ReportFile)
	if err := report.WriteText(txtPath, meta, a.data.NumericColumns(), a.summary); err != nil {
		a.warn("Report export failed: %v", err)
		return
	}
	a.ok("Analysis report exported to %s", txtPath)

	yamlPath := filepath.Join(a.cfg.OutDir, SummaryFile)
	if err := report.WriteYAML(yamlPath, meta, a.data.NumericColumns(), a.summary); err != nil {
		a.warn("Summary export failed: %v", err)
		return
	}
	a.ok("Machine-readable summary exported to %s", yamlPath)
}

// Run executes the fixed pipeline end to end.
func (a *Analyzer) Run() {
	fmt.Fprintln(a.out, "⚙ Data Analysis Dashboard")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))

	a.LoadSampleData()
	a.BasicStatistics()
	a.CorrelationAnalysis()
	a.TrendAnalysis()
	a.CategoryAnalysis()
	a.GenerateVisualizations()
	a.ExportReport()

	fmt.Fprintln(a.out)
	a.ok("Data analysis completed.")
	a.ok("Check %s for generated files.", a.cfg.OutDir)
}

func (a *Analyzer) correlationMatrix() *analysis.CorrMatrix {
	cols := a.data.NumericColumns()
	series := make([][]float64, len(cols))
	for i, col := range cols {
		series[i] = a.data.NumericColumn(col)
	}
	return analysis.Correlate(cols, series)
}
