package repos

import (
	"finvault/internal/models"
	"finvault/internal/store"
)

// CardRepo accesses the cards collection.
type CardRepo struct {
	col *store.Collection[models.Card, *models.Card]
}

// NewCardRepo creates a CardRepo bound to the given store.
func NewCardRepo(s *store.Store) *CardRepo {
	return &CardRepo{col: store.NewCollection[models.Card, *models.Card](s, "cards")}
}

// Create inserts a new card, assigning its id and timestamps.
func (r *CardRepo) Create(card *models.Card) error {
	return r.col.Insert(card)
}

// ByID returns the card with the given id, or false when absent.
func (r *CardRepo) ByID(id int64) (*models.Card, bool) {
	return r.col.ByID(id)
}

// ByUser returns all cards owned by the user.
func (r *CardRepo) ByUser(userID int64) []models.Card {
	return r.col.FindAll(func(c *models.Card) bool { return c.UserID == userID })
}

// Update overwrites the card with the given id. Returns false when absent.
func (r *CardRepo) Update(id int64, card *models.Card) (bool, error) {
	return r.col.Replace(id, card)
}

// Delete removes the card with the given id. Returns false when absent.
func (r *CardRepo) Delete(id int64) (bool, error) {
	return r.col.Delete(id)
}

// TotalBalanceByUser sums the balances of all cards owned by the user.
func (r *CardRepo) TotalBalanceByUser(userID int64) float64 {
	var total float64
	for _, card := range r.ByUser(userID) {
		total += card.Balance
	}
	return total
}
