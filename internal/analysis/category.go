package analysis

import "sort"

// CategorySummary aggregates one category's rows.
type CategorySummary struct {
	Category      string
	Count         int
	SalesSum      float64
	SalesMean     float64
	CustomersSum  int
	CustomersMean float64
}

// AggregateCategories groups rows by category label and aggregates the
// parallel sales and customers series. Results are sorted by category name.
func AggregateCategories(categories []string, sales []float64, customers []float64) []CategorySummary {
	type acc struct {
		count     int
		sales     float64
		customers int
	}
	groups := map[string]*acc{}
	for i, cat := range categories {
		g := groups[cat]
		if g == nil {
			g = &acc{}
			groups[cat] = g
		}
		g.count++
		g.sales += sales[i]
		g.customers += int(customers[i])
	}

	out := make([]CategorySummary, 0, len(groups))
	for cat, g := range groups {
		out = append(out, CategorySummary{
			Category:      cat,
			Count:         g.count,
			SalesSum:      g.sales,
			SalesMean:     g.sales / float64(g.count),
			CustomersSum:  g.customers,
			CustomersMean: float64(g.customers) / float64(g.count),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// BestCategory returns the category with the maximum summed sales. On a tie
// the first in slice order wins. Empty input returns "".
func BestCategory(sums []CategorySummary) string {
	if len(sums) == 0 {
		return ""
	}
	best := sums[0]
	for _, s := range sums[1:] {
		if s.SalesSum > best.SalesSum {
			best = s
		}
	}
	return best.Category
}
