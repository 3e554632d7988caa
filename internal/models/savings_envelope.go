package models

// SavingsEnvelope represents a named savings goal with a target and the
// amount accumulated so far.
type SavingsEnvelope struct {
	Base
	UserID        int64   `json:"user_id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Description   string  `json:"description,omitempty"`
}

// OwnerID returns the id of the user owning the envelope.
func (e *SavingsEnvelope) OwnerID() int64 { return e.UserID }

// Progress returns the completion percentage of the envelope. The value is
// never persisted and is not clamped: a current amount beyond the target
// yields more than 100.
func (e *SavingsEnvelope) Progress() float64 {
	if e.TargetAmount <= 0 {
		return 0
	}
	return e.CurrentAmount / e.TargetAmount * 100
}
