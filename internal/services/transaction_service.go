package services

import (
	"finvault/internal/clock"
	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/repos"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	transactions *repos.TransactionRepo
	cards        *repos.CardRepo
	clock        clock.Clock
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(transactions *repos.TransactionRepo, cards *repos.CardRepo, clk clock.Clock) TransactionServicer {
	return &transactionService{transactions: transactions, cards: cards, clock: clk}
}

// resolveCard verifies that a referenced card exists and belongs to the user.
func (s *transactionService) resolveCard(userID, cardID int64) error {
	card, found := s.cards.ByID(cardID)
	if !found || card.UserID != userID {
		return apperrors.ErrCardNotResolved
	}
	return nil
}

// CreateTransaction creates a new transaction. A card payment must reference
// a card owned by the same user; a zero date defaults to the current time.
func (s *transactionService) CreateTransaction(userID int64, in TransactionInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if in.PaymentMethod == models.PaymentMethodCard && in.CardID == nil {
		return nil, apperrors.ErrCardIDRequired
	}
	if in.CardID != nil {
		if err := s.resolveCard(userID, *in.CardID); err != nil {
			return nil, err
		}
	}

	date := in.TransactionDate
	if date.IsZero() {
		date = s.clock.Now()
	}

	tx := &models.Transaction{
		UserID:          userID,
		Category:        in.Category,
		Description:     in.Description,
		Amount:          in.Amount,
		Type:            in.Type,
		PaymentMethod:   in.PaymentMethod,
		CardID:          in.CardID,
		TransactionDate: date.UTC(),
	}
	if err := s.transactions.Create(tx); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return tx, nil
}

// GetUserTransactions returns every transaction owned by the user,
// regardless of date.
func (s *transactionService) GetUserTransactions(userID int64) []models.Transaction {
	return s.transactions.ByUser(userID)
}

// GetTransactionByID returns a transaction by id if it belongs to the user.
func (s *transactionService) GetTransactionByID(userID, transactionID int64) (*models.Transaction, error) {
	tx, found := s.transactions.ByID(transactionID)
	return authorize(tx, found, userID, apperrors.ErrTransactionNotFound)
}

// UpdateTransaction applies a partial update. A changed card reference is
// re-validated against the user's cards.
func (s *transactionService) UpdateTransaction(userID, transactionID int64, patch TransactionPatch) (*models.Transaction, error) {
	tx, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		tx.Amount = *patch.Amount
	}
	if patch.Type != nil {
		tx.Type = *patch.Type
	}
	if patch.PaymentMethod != nil {
		tx.PaymentMethod = *patch.PaymentMethod
	}
	if patch.CardID != nil {
		if err := s.resolveCard(userID, *patch.CardID); err != nil {
			return nil, err
		}
		tx.CardID = patch.CardID
	}
	if patch.TransactionDate != nil {
		tx.TransactionDate = patch.TransactionDate.UTC()
	}
	if tx.PaymentMethod == models.PaymentMethodCard && tx.CardID == nil {
		return nil, apperrors.ErrCardIDRequired
	}

	found, err := s.transactions.Update(transactionID, tx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !found {
		return nil, apperrors.ErrTransactionNotFound
	}
	return tx, nil
}

// DeleteTransaction removes a transaction after the ownership check.
func (s *transactionService) DeleteTransaction(userID, transactionID int64) error {
	if _, err := s.GetTransactionByID(userID, transactionID); err != nil {
		return err
	}
	deleted, err := s.transactions.Delete(transactionID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !deleted {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
