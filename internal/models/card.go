package models

// Card represents a bank card owned by a user.
type Card struct {
	Base
	UserID         int64   `json:"user_id"`
	BankName       string  `json:"bank_name"`
	CardType       string  `json:"card_type"`
	LastFourDigits string  `json:"last_four_digits"`
	Balance        float64 `json:"balance"`
	CardHolderName string  `json:"card_holder_name,omitempty"`
}

// OwnerID returns the id of the user owning the card.
func (c *Card) OwnerID() int64 { return c.UserID }
