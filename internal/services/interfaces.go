// Package services hosts the business logic: entity services with ownership
// checks, derived-field computation on responses, and the dashboard
// aggregator.
package services

import (
	"time"

	"finvault/internal/models"
)

// AuthServicer defines the contract for registration, login and profiles.
type AuthServicer interface {
	Register(email, username, fullName, password string) (*models.User, error)
	Login(username, password string) (*models.User, error)
	GetProfile(userID int64) (*models.User, error)
}

// CardInput holds the fields accepted when creating a card.
type CardInput struct {
	BankName       string
	CardType       string
	LastFourDigits string
	Balance        float64
	CardHolderName string
}

// CardPatch holds the optional fields of a partial card update. Nil fields
// are left untouched.
type CardPatch struct {
	BankName       *string
	CardType       *string
	LastFourDigits *string
	Balance        *float64
	CardHolderName *string
}

// CardServicer defines the contract for card-related business logic.
type CardServicer interface {
	CreateCard(userID int64, in CardInput) (*models.Card, error)
	GetUserCards(userID int64) []models.Card
	GetCardByID(userID, cardID int64) (*models.Card, error)
	UpdateCard(userID, cardID int64, patch CardPatch) (*models.Card, error)
	DeleteCard(userID, cardID int64) error
}

// TransactionInput holds the fields accepted when creating a transaction.
// A zero TransactionDate defaults to the current time.
type TransactionInput struct {
	Category        string
	Description     string
	Amount          float64
	Type            models.TransactionType
	PaymentMethod   models.PaymentMethod
	CardID          *int64
	TransactionDate time.Time
}

// TransactionPatch holds the optional fields of a partial transaction update.
type TransactionPatch struct {
	Category        *string
	Description     *string
	Amount          *float64
	Type            *models.TransactionType
	PaymentMethod   *models.PaymentMethod
	CardID          *int64
	TransactionDate *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID int64, in TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID int64) []models.Transaction
	GetTransactionByID(userID, transactionID int64) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID int64, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID int64) error
}

// EnvelopeView is a savings envelope with its computed progress percentage.
// The percentage is derived on every read and never persisted.
type EnvelopeView struct {
	models.SavingsEnvelope
	ProgressPercentage float64 `json:"progress_percentage"`
}

// EnvelopeInput holds the fields accepted when creating a savings envelope.
type EnvelopeInput struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Description   string
}

// EnvelopePatch holds the optional fields of a partial envelope update.
type EnvelopePatch struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Description   *string
}

// SavingsServicer defines the contract for savings envelope business logic.
type SavingsServicer interface {
	CreateEnvelope(userID int64, in EnvelopeInput) (*EnvelopeView, error)
	GetUserEnvelopes(userID int64) []EnvelopeView
	GetEnvelopeByID(userID, envelopeID int64) (*EnvelopeView, error)
	UpdateEnvelope(userID, envelopeID int64, patch EnvelopePatch) (*EnvelopeView, error)
	DeleteEnvelope(userID, envelopeID int64) error
	AddAmount(userID, envelopeID int64, amount float64) (*EnvelopeView, error)
}

// ReminderView is a payment reminder with its computed overdue flag. The
// flag is derived on every read and never persisted.
type ReminderView struct {
	models.PaymentReminder
	IsOverdue bool `json:"is_overdue"`
}

// ReminderInput holds the fields accepted when creating a payment reminder.
type ReminderInput struct {
	PaymentName string
	Amount      float64
	DueDate     time.Time
	Category    string
	Priority    models.Priority
	IsPaid      bool
	Description string
}

// ReminderPatch holds the optional fields of a partial reminder update.
type ReminderPatch struct {
	PaymentName *string
	Amount      *float64
	DueDate     *time.Time
	Category    *string
	Priority    *models.Priority
	IsPaid      *bool
	Description *string
}

// ReminderServicer defines the contract for payment reminder business logic.
type ReminderServicer interface {
	CreateReminder(userID int64, in ReminderInput) (*ReminderView, error)
	GetUserReminders(userID int64) []ReminderView
	GetReminderByID(userID, reminderID int64) (*ReminderView, error)
	UpdateReminder(userID, reminderID int64, patch ReminderPatch) (*ReminderView, error)
	DeleteReminder(userID, reminderID int64) error
	MarkPaid(userID, reminderID int64) (*ReminderView, error)
	GetPendingReminders(userID int64) []ReminderView
	GetOverdueReminders(userID int64) []ReminderView
}

// CategorySummary aggregates the transactions of one category.
type CategorySummary struct {
	Category         string  `json:"category"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

// DashboardSummary packages the computed financial overview for a user.
type DashboardSummary struct {
	TotalIncome       float64 `json:"total_income"`
	TotalExpenses     float64 `json:"total_expenses"`
	Balance           float64 `json:"balance"`
	TotalCards        int     `json:"total_cards"`
	TotalCardsBalance float64 `json:"total_cards_balance"`
	TotalSavings      float64 `json:"total_savings"`
	SavingsProgress   float64 `json:"savings_progress"`
	PendingReminders  int     `json:"pending_reminders"`
	OverdueReminders  int     `json:"overdue_reminders"`

	ExpensesByCategory []CategorySummary `json:"expenses_by_category"`
	IncomeByCategory   []CategorySummary `json:"income_by_category"`

	RecentTransactionsCount int `json:"recent_transactions_count"`

	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// DashboardServicer defines the contract for dashboard aggregation.
type DashboardServicer interface {
	Summary(userID int64, days int) (*DashboardSummary, error)
	CategoryBreakdown(userID int64, txType models.TransactionType) []CategorySummary
}
