package models

import "time"

// Priority represents the urgency of a payment reminder
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PaymentReminder represents a scheduled obligation to pay.
type PaymentReminder struct {
	Base
	UserID      int64     `json:"user_id"`
	PaymentName string    `json:"payment_name"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	IsPaid      bool      `json:"is_paid"`
	Description string    `json:"description,omitempty"`
}

// OwnerID returns the id of the user owning the reminder.
func (r *PaymentReminder) OwnerID() int64 { return r.UserID }

// OverdueAt reports whether the reminder is overdue at the given instant.
// A paid reminder is never overdue, nor is one without a due date. The value
// is never persisted and is recomputed on every read.
func (r *PaymentReminder) OverdueAt(now time.Time) bool {
	if r.IsPaid || r.DueDate.IsZero() {
		return false
	}
	return r.DueDate.Before(now)
}
