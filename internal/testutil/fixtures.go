package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finvault/internal/models"
	"finvault/internal/repos"
	"finvault/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a hashed password and unique
// username and email.
func CreateTestUser(t *testing.T, s *store.Store) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:          fmt.Sprintf("user%d@test.com", n),
		Username:       fmt.Sprintf("user%d", n),
		HashedPassword: string(hash),
		IsActive:       true,
	}
	if err := repos.NewUserRepo(s).Create(user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCard creates a card with the given balance.
func CreateTestCard(t *testing.T, s *store.Store, userID int64, balance float64) *models.Card {
	t.Helper()

	card := &models.Card{
		UserID:         userID,
		BankName:       fmt.Sprintf("Test Bank %d", nextID()),
		CardType:       "debit",
		LastFourDigits: "4242",
		Balance:        balance,
	}
	if err := repos.NewCardRepo(s).Create(card); err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestTransaction creates a transaction of the given type, category,
// amount and date, paid in cash.
func CreateTestTransaction(t *testing.T, s *store.Store, userID int64, txType models.TransactionType, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		Category:        category,
		Amount:          amount,
		Type:            txType,
		PaymentMethod:   models.PaymentMethodCash,
		TransactionDate: date.UTC(),
	}
	if err := repos.NewTransactionRepo(s).Create(tx); err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestEnvelope creates a savings envelope with the given target and
// current amounts.
func CreateTestEnvelope(t *testing.T, s *store.Store, userID int64, target, current float64) *models.SavingsEnvelope {
	t.Helper()

	envelope := &models.SavingsEnvelope{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Envelope %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
	}
	if err := repos.NewSavingsRepo(s).Create(envelope); err != nil {
		t.Fatalf("failed to create test envelope: %v", err)
	}
	return envelope
}

// CreateTestReminder creates a payment reminder with the given due date and
// paid state.
func CreateTestReminder(t *testing.T, s *store.Store, userID int64, dueDate time.Time, isPaid bool) *models.PaymentReminder {
	t.Helper()

	reminder := &models.PaymentReminder{
		UserID:      userID,
		PaymentName: fmt.Sprintf("Test Payment %d", nextID()),
		Amount:      50,
		DueDate:     dueDate.UTC(),
		Category:    "Utilities",
		Priority:    models.PriorityMedium,
		IsPaid:      isPaid,
	}
	if err := repos.NewReminderRepo(s).Create(reminder); err != nil {
		t.Fatalf("failed to create test reminder: %v", err)
	}
	return reminder
}
