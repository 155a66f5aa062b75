package analysis

import "testing"

func TestAggregateCategories(t *testing.T) {
	categories := []string{"Books", "Food", "Books", "Food", "Clothing"}
	sales := []float64{10, 20, 30, 5, 50}
	customers := []float64{1, 2, 3, 4, 5}

	sums := AggregateCategories(categories, sales, customers)
	if len(sums) != 3 {
		t.Fatalf("groups = %d, want 3", len(sums))
	}
	// Sorted by name: Books, Clothing, Food.
	books := sums[0]
	if books.Category != "Books" || books.Count != 2 {
		t.Fatalf("books = %#v", books)
	}
	if !almostEqual(books.SalesSum, 40, 1e-12) || !almostEqual(books.SalesMean, 20, 1e-12) {
		t.Fatalf("books sales = %f/%f", books.SalesSum, books.SalesMean)
	}
	if books.CustomersSum != 4 || !almostEqual(books.CustomersMean, 2, 1e-12) {
		t.Fatalf("books customers = %d/%f", books.CustomersSum, books.CustomersMean)
	}

	total := 0
	for _, s := range sums {
		total += s.Count
	}
	if total != len(categories) {
		t.Fatalf("group counts sum to %d, want %d", total, len(categories))
	}
}

func TestBestCategory(t *testing.T) {
	sums := AggregateCategories(
		[]string{"A", "B", "B", "C"},
		[]float64{100, 60, 60, 90},
		[]float64{1, 1, 1, 1},
	)
	if got := BestCategory(sums); got != "B" {
		t.Fatalf("best = %q, want B (sum 120)", got)
	}
	if got := BestCategory(nil); got != "" {
		t.Fatalf("best of empty = %q, want empty", got)
	}
}

func TestBestCategoryTieKeepsFirst(t *testing.T) {
	sums := []CategorySummary{
		{Category: "X", SalesSum: 10},
		{Category: "Y", SalesSum: 10},
	}
	if got := BestCategory(sums); got != "X" {
		t.Fatalf("tie best = %q, want X", got)
	}
}
