package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// ReminderHandler handles payment reminder requests.
type ReminderHandler struct {
	reminderService services.ReminderServicer
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService services.ReminderServicer) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// CreateReminderRequest represents the request payload for creating a
// payment reminder. Priority defaults to medium.
type CreateReminderRequest struct {
	PaymentName string    `json:"payment_name" binding:"required,min=1,max=100"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Category    string    `json:"category" binding:"required,min=1,max=100"`
	Priority    string    `json:"priority" binding:"omitempty,priority"`
	IsPaid      bool      `json:"is_paid"`
	Description string    `json:"description" binding:"omitempty,max=500"`
}

// UpdateReminderRequest represents the request payload for a partial
// reminder update.
type UpdateReminderRequest struct {
	PaymentName *string    `json:"payment_name" binding:"omitempty,min=1,max=100"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	DueDate     *time.Time `json:"due_date"`
	Category    *string    `json:"category" binding:"omitempty,min=1,max=100"`
	Priority    *string    `json:"priority" binding:"omitempty,priority"`
	IsPaid      *bool      `json:"is_paid"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
}

// CreateReminder handles the creation of a new payment reminder.
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder, err := h.reminderService.CreateReminder(userID, services.ReminderInput{
		PaymentName: req.PaymentName,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Category:    req.Category,
		Priority:    models.Priority(req.Priority),
		IsPaid:      req.IsPaid,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// GetReminders handles listing the authenticated user's reminders.
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminders := h.reminderService.GetUserReminders(userID)
	c.JSON(http.StatusOK, gin.H{"total": len(reminders), "reminders": reminders})
}

// GetPendingReminders handles listing the user's unpaid reminders.
func (h *ReminderHandler) GetPendingReminders(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminders := h.reminderService.GetPendingReminders(userID)
	c.JSON(http.StatusOK, gin.H{"total": len(reminders), "reminders": reminders})
}

// GetOverdueReminders handles listing the user's overdue reminders.
func (h *ReminderHandler) GetOverdueReminders(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminders := h.reminderService.GetOverdueReminders(userID)
	c.JSON(http.StatusOK, gin.H{"total": len(reminders), "reminders": reminders})
}

// GetReminder handles retrieving a specific reminder.
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminderID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminder, err := h.reminderService.GetReminderByID(userID, reminderID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// UpdateReminder handles a partial update of an existing reminder.
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminderID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.ReminderPatch{
		PaymentName: req.PaymentName,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Category:    req.Category,
		IsPaid:      req.IsPaid,
		Description: req.Description,
	}
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		patch.Priority = &p
	}

	reminder, err := h.reminderService.UpdateReminder(userID, reminderID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminder handles deleting a reminder.
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminderID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.reminderService.DeleteReminder(userID, reminderID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkPaid handles flagging a reminder as paid.
func (h *ReminderHandler) MarkPaid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminderID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminder, err := h.reminderService.MarkPaid(userID, reminderID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}
