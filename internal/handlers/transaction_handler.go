package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. An omitted transaction_date defaults to the current time.
type CreateTransactionRequest struct {
	Category        string     `json:"category" binding:"required,min=1,max=100"`
	Description     string     `json:"description" binding:"omitempty,max=500"`
	Amount          float64    `json:"amount" binding:"required,gt=0"`
	Type            string     `json:"transaction_type" binding:"required,transaction_type"`
	PaymentMethod   string     `json:"payment_method" binding:"required,payment_method"`
	CardID          *int64     `json:"card_id"`
	TransactionDate *time.Time `json:"transaction_date"`
}

// UpdateTransactionRequest represents the request payload for a partial
// transaction update.
type UpdateTransactionRequest struct {
	Category        *string    `json:"category" binding:"omitempty,min=1,max=100"`
	Description     *string    `json:"description" binding:"omitempty,max=500"`
	Amount          *float64   `json:"amount" binding:"omitempty,gt=0"`
	Type            *string    `json:"transaction_type" binding:"omitempty,transaction_type"`
	PaymentMethod   *string    `json:"payment_method" binding:"omitempty,payment_method"`
	CardID          *int64     `json:"card_id"`
	TransactionDate *time.Time `json:"transaction_date"`
}

// CreateTransaction handles the creation of a new transaction.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in := services.TransactionInput{
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          models.TransactionType(req.Type),
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		CardID:        req.CardID,
	}
	if req.TransactionDate != nil {
		in.TransactionDate = *req.TransactionDate
	}

	tx, err := h.transactionService.CreateTransaction(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// GetTransactions handles listing all of the user's transactions.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions := h.transactionService.GetUserTransactions(userID)
	c.JSON(http.StatusOK, gin.H{"total": len(transactions), "transactions": transactions})
}

// GetTransaction handles retrieving a specific transaction.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// UpdateTransaction handles a partial update of an existing transaction.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.TransactionPatch{
		Category:        req.Category,
		Description:     req.Description,
		Amount:          req.Amount,
		CardID:          req.CardID,
		TransactionDate: req.TransactionDate,
	}
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		patch.Type = &t
	}
	if req.PaymentMethod != nil {
		m := models.PaymentMethod(*req.PaymentMethod)
		patch.PaymentMethod = &m
	}

	tx, err := h.transactionService.UpdateTransaction(userID, transactionID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// DeleteTransaction handles deleting a transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
