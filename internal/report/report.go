package report

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/datadash-cli/internal/analysis"
	"github.com/KaramelBytes/datadash-cli/internal/utils"
)

// Meta identifies one analysis run.
type Meta struct {
	RunID       string
	GeneratedAt time.Time
	Rows        int
	Columns     []string
}

// Render formats the plain-text analysis report. columnOrder fixes the
// iteration order over stats, which is a map.
func Render(meta Meta, columnOrder []string, stats analysis.SummaryStats) string {
	var b strings.Builder
	b.WriteString("DATA ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString(fmt.Sprintf("Generated on: %s\n", meta.GeneratedAt.Format("2006-01-02 15:04:05")))
	if meta.RunID != "" {
		b.WriteString(fmt.Sprintf("Run ID: %s\n", meta.RunID))
	}
	b.WriteString("\n")

	b.WriteString("DATASET OVERVIEW\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	b.WriteString(fmt.Sprintf("Total records: %d\n", meta.Rows))
	b.WriteString(fmt.Sprintf("Columns: %s\n\n", strings.Join(meta.Columns, ", ")))

	b.WriteString("BASIC STATISTICS\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, col := range columnOrder {
		s, ok := stats[col]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s:\n", col))
		for _, name := range analysis.StatNames {
			b.WriteString(fmt.Sprintf("  %s: %.2f\n", name, s.Get(name)))
		}
	}
	return b.String()
}

// WriteText renders the report and writes it to path, replacing any
// existing file.
func WriteText(path string, meta Meta, columnOrder []string, stats analysis.SummaryStats) error {
	if err := utils.SafeWriteFile(path, []byte(Render(meta, columnOrder, stats))); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

type yamlColumn struct {
	Column string  `yaml:"column"`
	Mean   float64 `yaml:"mean"`
	Median float64 `yaml:"median"`
	Std    float64 `yaml:"std"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Q1     float64 `yaml:"q1"`
	Q3     float64 `yaml:"q3"`
}

type yamlSummary struct {
	RunID       string       `yaml:"run_id"`
	GeneratedAt string       `yaml:"generated_at"`
	Rows        int          `yaml:"rows"`
	Columns     []string     `yaml:"columns"`
	Stats       []yamlColumn `yaml:"stats"`
}

// WriteYAML writes a machine-readable companion to the text report.
func WriteYAML(path string, meta Meta, columnOrder []string, stats analysis.SummaryStats) error {
	doc := yamlSummary{
		RunID:       meta.RunID,
		GeneratedAt: meta.GeneratedAt.Format(time.RFC3339),
		Rows:        meta.Rows,
		Columns:     meta.Columns,
	}
	for _, col := range columnOrder {
		s, ok := stats[col]
		if !ok {
			continue
		}
		doc.Stats = append(doc.Stats, yamlColumn{
			Column: col,
			Mean:   s.Mean,
			Median: s.Median,
			Std:    s.Std,
			Min:    s.Min,
			Max:    s.Max,
			Q1:     s.Q1,
			Q3:     s.Q3,
		})
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
