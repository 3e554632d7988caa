package services

import (
	"testing"

	"finvault/internal/models"
)

func tx(category string, amount float64) models.Transaction {
	return models.Transaction{Category: category, Amount: amount}
}

func TestRollupByCategory(t *testing.T) {
	t.Run("groups by category and orders by total descending", func(t *testing.T) {
		groups := rollupByCategory([]models.Transaction{
			tx("Food", 10),
			tx("Food", 5),
			tx("Rent", 20),
		})

		want := []CategorySummary{
			{Category: "Rent", TotalAmount: 20, TransactionCount: 1},
			{Category: "Food", TotalAmount: 15, TransactionCount: 2},
		}
		if len(groups) != len(want) {
			t.Fatalf("expected %d groups, got %d", len(want), len(groups))
		}
		for i := range want {
			if groups[i] != want[i] {
				t.Errorf("group %d = %+v, want %+v", i, groups[i], want[i])
			}
		}
	})

	t.Run("blank category rolls up as Other", func(t *testing.T) {
		groups := rollupByCategory([]models.Transaction{
			tx("", 30),
			tx("", 10),
		})

		if len(groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(groups))
		}
		if groups[0].Category != "Other" || groups[0].TotalAmount != 40 || groups[0].TransactionCount != 2 {
			t.Errorf("unexpected group: %+v", groups[0])
		}
	})

	t.Run("equal totals keep first-seen order", func(t *testing.T) {
		groups := rollupByCategory([]models.Transaction{
			tx("Transport", 25),
			tx("Leisure", 25),
		})

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Category != "Transport" || groups[1].Category != "Leisure" {
			t.Errorf("expected first-seen order on tie, got %q then %q", groups[0].Category, groups[1].Category)
		}
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		if groups := rollupByCategory(nil); len(groups) != 0 {
			t.Errorf("expected no groups, got %+v", groups)
		}
	})

	t.Run("categories match by exact string", func(t *testing.T) {
		groups := rollupByCategory([]models.Transaction{
			tx("food", 10),
			tx("Food", 10),
		})

		if len(groups) != 2 {
			t.Errorf("expected case-sensitive grouping into 2 groups, got %d", len(groups))
		}
	})
}
