package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// PaymentMethod represents how a transaction was paid
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// Transaction represents a single income or expense movement.
type Transaction struct {
	Base
	UserID          int64           `json:"user_id"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	Amount          float64         `json:"amount"`
	Type            TransactionType `json:"transaction_type"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	CardID          *int64          `json:"card_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// OwnerID returns the id of the user owning the transaction.
func (t *Transaction) OwnerID() int64 { return t.UserID }
