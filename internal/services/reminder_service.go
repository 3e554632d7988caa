package services

import (
	"finvault/internal/clock"
	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/repos"
)

// reminderService handles payment reminder business logic.
type reminderService struct {
	reminders *repos.ReminderRepo
	clock     clock.Clock
}

// NewReminderService creates a new ReminderServicer.
func NewReminderService(reminders *repos.ReminderRepo, clk clock.Clock) ReminderServicer {
	return &reminderService{reminders: reminders, clock: clk}
}

func (s *reminderService) reminderView(r *models.PaymentReminder) *ReminderView {
	return &ReminderView{PaymentReminder: *r, IsOverdue: r.OverdueAt(s.clock.Now())}
}

// CreateReminder creates a new payment reminder for the user.
func (s *reminderService) CreateReminder(userID int64, in ReminderInput) (*ReminderView, error) {
	if in.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	reminder := &models.PaymentReminder{
		UserID:      userID,
		PaymentName: in.PaymentName,
		Amount:      in.Amount,
		DueDate:     in.DueDate.UTC(),
		Category:    in.Category,
		Priority:    priority,
		IsPaid:      in.IsPaid,
		Description: in.Description,
	}
	if err := s.reminders.Create(reminder); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return s.reminderView(reminder), nil
}

// GetUserReminders returns all reminders owned by the user, each with its
// overdue flag recomputed.
func (s *reminderService) GetUserReminders(userID int64) []ReminderView {
	return s.views(s.reminders.ByUser(userID))
}

// GetReminderByID returns a reminder by id if it belongs to the user.
func (s *reminderService) GetReminderByID(userID, reminderID int64) (*ReminderView, error) {
	reminder, found := s.reminders.ByID(reminderID)
	reminder, err := authorize(reminder, found, userID, apperrors.ErrReminderNotFound)
	if err != nil {
		return nil, err
	}
	return s.reminderView(reminder), nil
}

// UpdateReminder applies a partial update and recomputes the overdue flag on
// the returned view.
func (s *reminderService) UpdateReminder(userID, reminderID int64, patch ReminderPatch) (*ReminderView, error) {
	view, err := s.GetReminderByID(userID, reminderID)
	if err != nil {
		return nil, err
	}
	reminder := view.PaymentReminder

	if patch.PaymentName != nil {
		reminder.PaymentName = *patch.PaymentName
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		reminder.Amount = *patch.Amount
	}
	if patch.DueDate != nil {
		reminder.DueDate = patch.DueDate.UTC()
	}
	if patch.Category != nil {
		reminder.Category = *patch.Category
	}
	if patch.Priority != nil {
		reminder.Priority = *patch.Priority
	}
	if patch.IsPaid != nil {
		reminder.IsPaid = *patch.IsPaid
	}
	if patch.Description != nil {
		reminder.Description = *patch.Description
	}

	found, err := s.reminders.Update(reminderID, &reminder)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !found {
		return nil, apperrors.ErrReminderNotFound
	}
	return s.reminderView(&reminder), nil
}

// DeleteReminder removes a reminder after the ownership check.
func (s *reminderService) DeleteReminder(userID, reminderID int64) error {
	if _, err := s.GetReminderByID(userID, reminderID); err != nil {
		return err
	}
	deleted, err := s.reminders.Delete(reminderID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !deleted {
		return apperrors.ErrReminderNotFound
	}
	return nil
}

// MarkPaid flags a reminder as paid; its overdue flag reads false from then on.
func (s *reminderService) MarkPaid(userID, reminderID int64) (*ReminderView, error) {
	view, err := s.GetReminderByID(userID, reminderID)
	if err != nil {
		return nil, err
	}
	reminder := view.PaymentReminder
	reminder.IsPaid = true

	found, err := s.reminders.Update(reminderID, &reminder)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !found {
		return nil, apperrors.ErrReminderNotFound
	}
	return s.reminderView(&reminder), nil
}

// GetPendingReminders returns the user's unpaid reminders.
func (s *reminderService) GetPendingReminders(userID int64) []ReminderView {
	return s.views(s.reminders.PendingByUser(userID))
}

// GetOverdueReminders returns the user's unpaid reminders past their due date.
func (s *reminderService) GetOverdueReminders(userID int64) []ReminderView {
	return s.views(s.reminders.OverdueByUser(userID, s.clock.Now()))
}

func (s *reminderService) views(reminders []models.PaymentReminder) []ReminderView {
	views := make([]ReminderView, 0, len(reminders))
	for i := range reminders {
		views = append(views, *s.reminderView(&reminders[i]))
	}
	return views
}
