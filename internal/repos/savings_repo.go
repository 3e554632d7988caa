package repos

import (
	"finvault/internal/models"
	"finvault/internal/store"
)

// SavingsRepo accesses the savings_envelopes collection.
type SavingsRepo struct {
	col *store.Collection[models.SavingsEnvelope, *models.SavingsEnvelope]
}

// NewSavingsRepo creates a SavingsRepo bound to the given store.
func NewSavingsRepo(s *store.Store) *SavingsRepo {
	return &SavingsRepo{col: store.NewCollection[models.SavingsEnvelope, *models.SavingsEnvelope](s, "savings_envelopes")}
}

// Create inserts a new envelope, assigning its id and timestamps.
func (r *SavingsRepo) Create(envelope *models.SavingsEnvelope) error {
	return r.col.Insert(envelope)
}

// ByID returns the envelope with the given id, or false when absent.
func (r *SavingsRepo) ByID(id int64) (*models.SavingsEnvelope, bool) {
	return r.col.ByID(id)
}

// ByUser returns all envelopes owned by the user.
func (r *SavingsRepo) ByUser(userID int64) []models.SavingsEnvelope {
	return r.col.FindAll(func(e *models.SavingsEnvelope) bool { return e.UserID == userID })
}

// Update overwrites the envelope with the given id. Returns false when absent.
func (r *SavingsRepo) Update(id int64, envelope *models.SavingsEnvelope) (bool, error) {
	return r.col.Replace(id, envelope)
}

// Delete removes the envelope with the given id. Returns false when absent.
func (r *SavingsRepo) Delete(id int64) (bool, error) {
	return r.col.Delete(id)
}

// TotalSavingsByUser sums the current amounts across the user's envelopes.
func (r *SavingsRepo) TotalSavingsByUser(userID int64) float64 {
	var total float64
	for _, envelope := range r.ByUser(userID) {
		total += envelope.CurrentAmount
	}
	return total
}

// AverageProgressByUser returns the arithmetic mean of the user's envelope
// progress percentages, or 0 when the user has no envelopes.
func (r *SavingsRepo) AverageProgressByUser(userID int64) float64 {
	envelopes := r.ByUser(userID)
	if len(envelopes) == 0 {
		return 0
	}
	var total float64
	for i := range envelopes {
		total += envelopes[i].Progress()
	}
	return total / float64(len(envelopes))
}
