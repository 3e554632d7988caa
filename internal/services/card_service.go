package services

import (
	"regexp"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/repos"
)

var lastFourRegex = regexp.MustCompile(`^\d{4}$`)

// cardService handles card-related business logic.
type cardService struct {
	cards *repos.CardRepo
}

// NewCardService creates a new CardServicer.
func NewCardService(cards *repos.CardRepo) CardServicer {
	return &cardService{cards: cards}
}

// CreateCard creates a new card for the user.
func (s *cardService) CreateCard(userID int64, in CardInput) (*models.Card, error) {
	if !lastFourRegex.MatchString(in.LastFourDigits) {
		return nil, apperrors.ErrInvalidLastFour
	}
	if in.Balance < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Balance cannot be negative")
	}

	card := &models.Card{
		UserID:         userID,
		BankName:       in.BankName,
		CardType:       in.CardType,
		LastFourDigits: in.LastFourDigits,
		Balance:        in.Balance,
		CardHolderName: in.CardHolderName,
	}
	if err := s.cards.Create(card); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return card, nil
}

// GetUserCards returns all cards owned by the user.
func (s *cardService) GetUserCards(userID int64) []models.Card {
	return s.cards.ByUser(userID)
}

// GetCardByID returns a card by id if it belongs to the user.
func (s *cardService) GetCardByID(userID, cardID int64) (*models.Card, error) {
	card, found := s.cards.ByID(cardID)
	return authorize(card, found, userID, apperrors.ErrCardNotFound)
}

// UpdateCard applies a partial update to a card. Only non-nil patch fields
// overwrite the stored values.
func (s *cardService) UpdateCard(userID, cardID int64, patch CardPatch) (*models.Card, error) {
	card, err := s.GetCardByID(userID, cardID)
	if err != nil {
		return nil, err
	}

	if patch.BankName != nil {
		card.BankName = *patch.BankName
	}
	if patch.CardType != nil {
		card.CardType = *patch.CardType
	}
	if patch.LastFourDigits != nil {
		if !lastFourRegex.MatchString(*patch.LastFourDigits) {
			return nil, apperrors.ErrInvalidLastFour
		}
		card.LastFourDigits = *patch.LastFourDigits
	}
	if patch.Balance != nil {
		if *patch.Balance < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Balance cannot be negative")
		}
		card.Balance = *patch.Balance
	}
	if patch.CardHolderName != nil {
		card.CardHolderName = *patch.CardHolderName
	}

	found, err := s.cards.Update(cardID, card)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !found {
		return nil, apperrors.ErrCardNotFound
	}
	return card, nil
}

// DeleteCard removes a card after the ownership check.
func (s *cardService) DeleteCard(userID, cardID int64) error {
	if _, err := s.GetCardByID(userID, cardID); err != nil {
		return err
	}
	deleted, err := s.cards.Delete(cardID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !deleted {
		return apperrors.ErrCardNotFound
	}
	return nil
}
