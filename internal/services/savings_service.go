package services

import (
	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/repos"
)

// savingsService handles savings envelope business logic.
type savingsService struct {
	envelopes *repos.SavingsRepo
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(envelopes *repos.SavingsRepo) SavingsServicer {
	return &savingsService{envelopes: envelopes}
}

func envelopeView(e *models.SavingsEnvelope) *EnvelopeView {
	return &EnvelopeView{SavingsEnvelope: *e, ProgressPercentage: e.Progress()}
}

// CreateEnvelope creates a new savings envelope for the user.
func (s *savingsService) CreateEnvelope(userID int64, in EnvelopeInput) (*EnvelopeView, error) {
	if in.TargetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Target amount must be greater than zero")
	}
	if in.CurrentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Current amount cannot be negative")
	}

	envelope := &models.SavingsEnvelope{
		UserID:        userID,
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Description:   in.Description,
	}
	if err := s.envelopes.Create(envelope); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return envelopeView(envelope), nil
}

// GetUserEnvelopes returns all envelopes owned by the user, each with its
// progress percentage recomputed.
func (s *savingsService) GetUserEnvelopes(userID int64) []EnvelopeView {
	envelopes := s.envelopes.ByUser(userID)
	views := make([]EnvelopeView, 0, len(envelopes))
	for i := range envelopes {
		views = append(views, *envelopeView(&envelopes[i]))
	}
	return views
}

// GetEnvelopeByID returns an envelope by id if it belongs to the user.
func (s *savingsService) GetEnvelopeByID(userID, envelopeID int64) (*EnvelopeView, error) {
	envelope, found := s.envelopes.ByID(envelopeID)
	envelope, err := authorize(envelope, found, userID, apperrors.ErrEnvelopeNotFound)
	if err != nil {
		return nil, err
	}
	return envelopeView(envelope), nil
}

// UpdateEnvelope applies a partial update and recomputes the progress on the
// returned view.
func (s *savingsService) UpdateEnvelope(userID, envelopeID int64, patch EnvelopePatch) (*EnvelopeView, error) {
	view, err := s.GetEnvelopeByID(userID, envelopeID)
	if err != nil {
		return nil, err
	}
	envelope := view.SavingsEnvelope

	if patch.Name != nil {
		envelope.Name = *patch.Name
	}
	if patch.TargetAmount != nil {
		if *patch.TargetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Target amount must be greater than zero")
		}
		envelope.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		if *patch.CurrentAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Current amount cannot be negative")
		}
		envelope.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Description != nil {
		envelope.Description = *patch.Description
	}

	found, err := s.envelopes.Update(envelopeID, &envelope)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !found {
		return nil, apperrors.ErrEnvelopeNotFound
	}
	return envelopeView(&envelope), nil
}

// DeleteEnvelope removes an envelope after the ownership check.
func (s *savingsService) DeleteEnvelope(userID, envelopeID int64) error {
	if _, err := s.GetEnvelopeByID(userID, envelopeID); err != nil {
		return err
	}
	deleted, err := s.envelopes.Delete(envelopeID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !deleted {
		return apperrors.ErrEnvelopeNotFound
	}
	return nil
}

// AddAmount deposits into an envelope. The amount must be strictly positive;
// the returned view carries the recomputed progress.
func (s *savingsService) AddAmount(userID, envelopeID int64, amount float64) (*EnvelopeView, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	view, err := s.GetEnvelopeByID(userID, envelopeID)
	if err != nil {
		return nil, err
	}
	envelope := view.SavingsEnvelope
	envelope.CurrentAmount += amount

	found, err := s.envelopes.Update(envelopeID, &envelope)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !found {
		return nil, apperrors.ErrEnvelopeNotFound
	}
	return envelopeView(&envelope), nil
}
