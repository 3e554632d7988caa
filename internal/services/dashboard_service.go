package services

import (
	"time"

	"finvault/internal/clock"
	"finvault/internal/models"
	"finvault/internal/repos"
)

// dashboardService folds the per-user state of all four entity collections
// into a single summary.
type dashboardService struct {
	transactions *repos.TransactionRepo
	cards        *repos.CardRepo
	envelopes    *repos.SavingsRepo
	reminders    *repos.ReminderRepo
	clock        clock.Clock
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(
	transactions *repos.TransactionRepo,
	cards *repos.CardRepo,
	envelopes *repos.SavingsRepo,
	reminders *repos.ReminderRepo,
	clk clock.Clock,
) DashboardServicer {
	return &dashboardService{
		transactions: transactions,
		cards:        cards,
		envelopes:    envelopes,
		reminders:    reminders,
		clock:        clk,
	}
}

// Summary computes the dashboard for the trailing window of the given number
// of days. Income, expenses and the category rollups are windowed; card and
// savings totals are point-in-time balances over the full collections, and
// reminder counts ignore the window entirely.
func (s *dashboardService) Summary(userID int64, days int) (*DashboardSummary, error) {
	periodEnd := s.clock.Now()
	periodStart := periodEnd.Add(-time.Duration(days) * 24 * time.Hour)

	windowed := s.transactions.ByUserInRange(userID, periodStart, periodEnd)

	var totalIncome, totalExpenses float64
	var income, expenses []models.Transaction
	for _, tx := range windowed {
		switch tx.Type {
		case models.TransactionTypeIncome:
			totalIncome += tx.Amount
			income = append(income, tx)
		case models.TransactionTypeExpense:
			totalExpenses += tx.Amount
			expenses = append(expenses, tx)
		}
	}

	cards := s.cards.ByUser(userID)

	return &DashboardSummary{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		Balance:           totalIncome - totalExpenses,
		TotalCards:        len(cards),
		TotalCardsBalance: s.cards.TotalBalanceByUser(userID),
		TotalSavings:      s.envelopes.TotalSavingsByUser(userID),
		SavingsProgress:   s.envelopes.AverageProgressByUser(userID),
		PendingReminders:  len(s.reminders.PendingByUser(userID)),
		OverdueReminders:  len(s.reminders.OverdueByUser(userID, periodEnd)),

		ExpensesByCategory: s.summaries(expenses),
		IncomeByCategory:   s.summaries(income),

		RecentTransactionsCount: len(windowed),

		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}, nil
}

// CategoryBreakdown rolls up all of a user's transactions of one type,
// without any date window.
func (s *dashboardService) CategoryBreakdown(userID int64, txType models.TransactionType) []CategorySummary {
	return s.summaries(s.transactions.ByUserAndType(userID, txType))
}

func (s *dashboardService) summaries(txs []models.Transaction) []CategorySummary {
	groups := rollupByCategory(txs)
	if groups == nil {
		groups = []CategorySummary{}
	}
	return groups
}
