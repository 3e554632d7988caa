package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/services"
)

// CardHandler handles card-related requests.
type CardHandler struct {
	cardService services.CardServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCardRequest represents the request payload for creating a card.
type CreateCardRequest struct {
	BankName       string  `json:"bank_name" binding:"required,min=1,max=100"`
	CardType       string  `json:"card_type" binding:"required,min=1,max=50"`
	LastFourDigits string  `json:"last_four_digits" binding:"required,last_four"`
	Balance        float64 `json:"balance" binding:"omitempty,gte=0"`
	CardHolderName string  `json:"card_holder_name" binding:"omitempty,max=100"`
}

// UpdateCardRequest represents the request payload for a partial card update.
type UpdateCardRequest struct {
	BankName       *string  `json:"bank_name" binding:"omitempty,min=1,max=100"`
	CardType       *string  `json:"card_type" binding:"omitempty,min=1,max=50"`
	LastFourDigits *string  `json:"last_four_digits" binding:"omitempty,last_four"`
	Balance        *float64 `json:"balance" binding:"omitempty,gte=0"`
	CardHolderName *string  `json:"card_holder_name" binding:"omitempty,max=100"`
}

// CreateCard handles the creation of a new card.
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCard(userID, services.CardInput{
		BankName:       req.BankName,
		CardType:       req.CardType,
		LastFourDigits: req.LastFourDigits,
		Balance:        req.Balance,
		CardHolderName: req.CardHolderName,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GetCards handles listing the authenticated user's cards.
func (h *CardHandler) GetCards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cards := h.cardService.GetUserCards(userID)
	c.JSON(http.StatusOK, gin.H{"total": len(cards), "cards": cards})
}

// GetCard handles retrieving a specific card.
func (h *CardHandler) GetCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.GetCardByID(userID, cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// UpdateCard handles a partial update of an existing card.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.UpdateCard(userID, cardID, services.CardPatch{
		BankName:       req.BankName,
		CardType:       req.CardType,
		LastFourDigits: req.LastFourDigits,
		Balance:        req.Balance,
		CardHolderName: req.CardHolderName,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// DeleteCard handles deleting a card.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCard(userID, cardID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
