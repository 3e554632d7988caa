package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// DashboardHandler handles dashboard aggregation requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// summaryQuery binds the dashboard window parameter.
type summaryQuery struct {
	Days int `form:"days,default=30" binding:"min=1,max=365"`
}

// GetSummary handles computing the dashboard summary for the trailing window.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "days must be between 1 and 365"))
		return
	}

	summary, err := h.dashboardService.Summary(userID, q.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCategoryBreakdown handles rolling up all of the user's transactions of
// one type by category.
func (h *DashboardHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txType := models.TransactionType(c.Query("type"))
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
		return
	}

	breakdown := h.dashboardService.CategoryBreakdown(userID, txType)
	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}
