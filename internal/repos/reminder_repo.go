package repos

import (
	"time"

	"finvault/internal/models"
	"finvault/internal/store"
)

// ReminderRepo accesses the payment_reminders collection.
type ReminderRepo struct {
	col *store.Collection[models.PaymentReminder, *models.PaymentReminder]
}

// NewReminderRepo creates a ReminderRepo bound to the given store.
func NewReminderRepo(s *store.Store) *ReminderRepo {
	return &ReminderRepo{col: store.NewCollection[models.PaymentReminder, *models.PaymentReminder](s, "payment_reminders")}
}

// Create inserts a new reminder, assigning its id and timestamps.
func (r *ReminderRepo) Create(reminder *models.PaymentReminder) error {
	return r.col.Insert(reminder)
}

// ByID returns the reminder with the given id, or false when absent.
func (r *ReminderRepo) ByID(id int64) (*models.PaymentReminder, bool) {
	return r.col.ByID(id)
}

// ByUser returns all reminders owned by the user.
func (r *ReminderRepo) ByUser(userID int64) []models.PaymentReminder {
	return r.col.FindAll(func(m *models.PaymentReminder) bool { return m.UserID == userID })
}

// PendingByUser returns the user's unpaid reminders.
func (r *ReminderRepo) PendingByUser(userID int64) []models.PaymentReminder {
	return r.col.FindAll(func(m *models.PaymentReminder) bool {
		return m.UserID == userID && !m.IsPaid
	})
}

// OverdueByUser returns the user's unpaid reminders whose due date has passed.
func (r *ReminderRepo) OverdueByUser(userID int64, now time.Time) []models.PaymentReminder {
	return r.col.FindAll(func(m *models.PaymentReminder) bool {
		return m.UserID == userID && m.OverdueAt(now)
	})
}

// Update overwrites the reminder with the given id. Returns false when absent.
func (r *ReminderRepo) Update(id int64, reminder *models.PaymentReminder) (bool, error) {
	return r.col.Replace(id, reminder)
}

// Delete removes the reminder with the given id. Returns false when absent.
func (r *ReminderRepo) Delete(id int64) (bool, error) {
	return r.col.Delete(id)
}
