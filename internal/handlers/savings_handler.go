package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/services"
)

// SavingsHandler handles savings envelope requests.
type SavingsHandler struct {
	savingsService services.SavingsServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// CreateEnvelopeRequest represents the request payload for creating a
// savings envelope.
type CreateEnvelopeRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"omitempty,gte=0"`
	Description   string  `json:"description" binding:"omitempty,max=500"`
}

// UpdateEnvelopeRequest represents the request payload for a partial
// envelope update.
type UpdateEnvelopeRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=100"`
	TargetAmount  *float64 `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount" binding:"omitempty,gte=0"`
	Description   *string  `json:"description" binding:"omitempty,max=500"`
}

// AddAmountRequest represents the request payload for depositing into an
// envelope.
type AddAmountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreateEnvelope handles the creation of a new savings envelope.
func (h *SavingsHandler) CreateEnvelope(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	envelope, err := h.savingsService.CreateEnvelope(userID, services.EnvelopeInput{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Description:   req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, envelope)
}

// GetEnvelopes handles listing the authenticated user's envelopes.
func (h *SavingsHandler) GetEnvelopes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	envelopes := h.savingsService.GetUserEnvelopes(userID)
	c.JSON(http.StatusOK, gin.H{"total": len(envelopes), "envelopes": envelopes})
}

// GetEnvelope handles retrieving a specific envelope.
func (h *SavingsHandler) GetEnvelope(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	envelopeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	envelope, err := h.savingsService.GetEnvelopeByID(userID, envelopeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// UpdateEnvelope handles a partial update of an existing envelope.
func (h *SavingsHandler) UpdateEnvelope(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	envelopeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	envelope, err := h.savingsService.UpdateEnvelope(userID, envelopeID, services.EnvelopePatch{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Description:   req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// DeleteEnvelope handles deleting an envelope.
func (h *SavingsHandler) DeleteEnvelope(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	envelopeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.savingsService.DeleteEnvelope(userID, envelopeID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddAmount handles depositing into an envelope.
func (h *SavingsHandler) AddAmount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	envelopeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	envelope, err := h.savingsService.AddAmount(userID, envelopeID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}
