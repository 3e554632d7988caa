package services

import (
	"sort"

	"finvault/internal/models"
)

// fallbackCategory is used for transactions without a category.
const fallbackCategory = "Other"

// rollupByCategory groups transactions by exact category string (a blank
// category counts as "Other") and computes the total amount and transaction
// count per group. The result is ordered descending by total amount; groups
// with equal totals keep first-seen order.
func rollupByCategory(txs []models.Transaction) []CategorySummary {
	var groups []CategorySummary
	index := make(map[string]int)

	for i := range txs {
		category := txs[i].Category
		if category == "" {
			category = fallbackCategory
		}
		at, ok := index[category]
		if !ok {
			at = len(groups)
			index[category] = at
			groups = append(groups, CategorySummary{Category: category})
		}
		groups[at].TotalAmount += txs[i].Amount
		groups[at].TransactionCount++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalAmount > groups[j].TotalAmount
	})
	return groups
}
