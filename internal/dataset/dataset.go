package dataset

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Column names, fixed at design time. The schema never changes shape, so
// downstream stages address columns by these constants instead of sniffing
// types at runtime.
const (
	ColDate      = "Date"
	ColSales     = "Sales"
	ColCustomers = "Customers"
	ColCategory  = "Product_Category"
)

// Categories is the fixed label set for Record.Category.
var Categories = []string{"Electronics", "Clothing", "Books", "Food"}

// Record is one day of synthetic sales activity.
type Record struct {
	Date      time.Time
	Sales     float64
	Customers int
	Category  string
}

// Table is an ordered sequence of records, dates ascending. It is read-only
// after generation; every analysis stage borrows it without mutating.
type Table struct {
	Records []Record
}

// Options controls synthetic data generation.
type Options struct {
	// Rows is the number of consecutive days to generate.
	Rows int
	// Seed fixes the pseudo-random sequence so repeated runs are identical.
	Seed uint64
	// Start is the date of the first record.
	Start time.Time
}

// DefaultOptions returns the standard 100-day sample starting 2024-01-01.
func DefaultOptions() Options {
	return Options{
		Rows:  100,
		Seed:  42,
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Generate produces a deterministic synthetic table: Sales ~ N(1000, 200)
// plus a sinusoidal component (amplitude 100, angular step 0.1 per row),
// Customers ~ Poisson(50), Category uniform over Categories.
func Generate(opt Options) *Table {
	rng := rand.New(rand.NewSource(opt.Seed))
	normal := distuv.Normal{Mu: 1000, Sigma: 200, Src: rng}
	poisson := distuv.Poisson{Lambda: 50, Src: rng}

	recs := make([]Record, opt.Rows)
	for i := range recs {
		recs[i] = Record{
			Date:      opt.Start.AddDate(0, 0, i),
			Sales:     normal.Rand() + math.Sin(float64(i)*0.1)*100,
			Customers: int(poisson.Rand()),
			Category:  Categories[rng.Intn(len(Categories))],
		}
	}
	return &Table{Records: recs}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }

// Columns lists all column names in schema order.
func (t *Table) Columns() []string {
	return []string{ColDate, ColSales, ColCustomers, ColCategory}
}

// NumericColumns lists the real-valued columns in schema order.
func (t *Table) NumericColumns() []string {
	return []string{ColSales, ColCustomers}
}

// Dates returns the date column as a slice.
func (t *Table) Dates() []time.Time {
	out := make([]time.Time, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Date
	}
	return out
}

// Sales returns the sales column as a slice.
func (t *Table) Sales() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Sales
	}
	return out
}

// Customers returns the customer counts as floats for numeric analysis.
func (t *Table) Customers() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = float64(r.Customers)
	}
	return out
}

// CategoryLabels returns the category column as a slice.
func (t *Table) CategoryLabels() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Category
	}
	return out
}

// NumericColumn returns the named numeric column, or nil if the name is not
// a numeric column.
func (t *Table) NumericColumn(name string) []float64 {
	switch name {
	case ColSales:
		return t.Sales()
	case ColCustomers:
		return t.Customers()
	}
	return nil
}
