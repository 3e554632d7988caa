package repos

import (
	"time"

	"finvault/internal/models"
	"finvault/internal/store"
)

// TransactionRepo accesses the transactions collection.
type TransactionRepo struct {
	col *store.Collection[models.Transaction, *models.Transaction]
}

// NewTransactionRepo creates a TransactionRepo bound to the given store.
func NewTransactionRepo(s *store.Store) *TransactionRepo {
	return &TransactionRepo{col: store.NewCollection[models.Transaction, *models.Transaction](s, "transactions")}
}

// Create inserts a new transaction, assigning its id and timestamps.
func (r *TransactionRepo) Create(tx *models.Transaction) error {
	return r.col.Insert(tx)
}

// ByID returns the transaction with the given id, or false when absent.
func (r *TransactionRepo) ByID(id int64) (*models.Transaction, bool) {
	return r.col.ByID(id)
}

// ByUser returns all transactions owned by the user, regardless of date.
func (r *TransactionRepo) ByUser(userID int64) []models.Transaction {
	return r.col.FindAll(func(t *models.Transaction) bool { return t.UserID == userID })
}

// ByUserAndType returns the user's transactions of a single type.
func (r *TransactionRepo) ByUserAndType(userID int64, txType models.TransactionType) []models.Transaction {
	return r.col.FindAll(func(t *models.Transaction) bool {
		return t.UserID == userID && t.Type == txType
	})
}

// ByUserInRange returns the user's transactions whose date falls within
// [start, end], inclusive on both ends.
func (r *TransactionRepo) ByUserInRange(userID int64, start, end time.Time) []models.Transaction {
	return r.col.FindAll(func(t *models.Transaction) bool {
		if t.UserID != userID {
			return false
		}
		return !t.TransactionDate.Before(start) && !t.TransactionDate.After(end)
	})
}

// Update overwrites the transaction with the given id. Returns false when absent.
func (r *TransactionRepo) Update(id int64, tx *models.Transaction) (bool, error) {
	return r.col.Replace(id, tx)
}

// Delete removes the transaction with the given id. Returns false when absent.
func (r *TransactionRepo) Delete(id int64) (bool, error) {
	return r.col.Delete(id)
}
