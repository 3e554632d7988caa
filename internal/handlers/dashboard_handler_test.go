package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"finvault/internal/models"
	"finvault/internal/services"
)

// --- mock dashboard service ---

type mockDashboardService struct {
	summaryFn           func(userID int64, days int) (*services.DashboardSummary, error)
	categoryBreakdownFn func(userID int64, txType models.TransactionType) []services.CategorySummary
}

func (m *mockDashboardService) Summary(userID int64, days int) (*services.DashboardSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(userID, days)
	}
	return &services.DashboardSummary{}, nil
}

func (m *mockDashboardService) CategoryBreakdown(userID int64, txType models.TransactionType) []services.CategorySummary {
	if m.categoryBreakdownFn != nil {
		return m.categoryBreakdownFn(userID, txType)
	}
	return []services.CategorySummary{}
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/dashboard/summary", handler.GetSummary)
	auth.GET("/dashboard/categories", handler.GetCategoryBreakdown)
	return r
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	t.Run("defaults to a 30-day window", func(t *testing.T) {
		var gotDays int
		svc := &mockDashboardService{
			summaryFn: func(_ int64, days int) (*services.DashboardSummary, error) {
				gotDays = days
				return &services.DashboardSummary{
					TotalIncome:   100,
					TotalExpenses: 30,
					Balance:       70,
					PeriodEnd:     time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(svc))

		rec := doRequest(r, "GET", "/dashboard/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDays != 30 {
			t.Errorf("expected default window of 30 days, got %d", gotDays)
		}
		result := parseJSON(t, rec)
		if result["balance"].(float64) != 70 {
			t.Errorf("expected balance 70, got %v", result["balance"])
		}
	})

	t.Run("passes an explicit window through", func(t *testing.T) {
		var gotDays int
		svc := &mockDashboardService{
			summaryFn: func(_ int64, days int) (*services.DashboardSummary, error) {
				gotDays = days
				return &services.DashboardSummary{}, nil
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(svc))

		rec := doRequest(r, "GET", "/dashboard/summary?days=7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotDays != 7 {
			t.Errorf("expected 7 days, got %d", gotDays)
		}
	})

	t.Run("rejects a window outside 1..365", func(t *testing.T) {
		r := setupDashboardRouter(NewDashboardHandler(&mockDashboardService{}))

		for _, query := range []string{"days=0", "days=366", "days=-1", "days=abc"} {
			rec := doRequest(r, "GET", "/dashboard/summary?"+query, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", query, rec.Code)
			}
		}
	})
}

func TestDashboardHandler_GetCategoryBreakdown(t *testing.T) {
	t.Run("returns the rollup for a valid type", func(t *testing.T) {
		svc := &mockDashboardService{
			categoryBreakdownFn: func(_ int64, txType models.TransactionType) []services.CategorySummary {
				if txType != models.TransactionTypeExpense {
					t.Errorf("expected expense type, got %q", txType)
				}
				return []services.CategorySummary{
					{Category: "Rent", TotalAmount: 20, TransactionCount: 1},
					{Category: "Food", TotalAmount: 15, TransactionCount: 2},
				}
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(svc))

		rec := doRequest(r, "GET", "/dashboard/categories?type=expense", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		categories := result["categories"].([]interface{})
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		first := categories[0].(map[string]interface{})
		if first["category"] != "Rent" {
			t.Errorf("expected Rent first, got %v", first["category"])
		}
	})

	t.Run("rejects a missing or unknown type", func(t *testing.T) {
		r := setupDashboardRouter(NewDashboardHandler(&mockDashboardService{}))

		for _, query := range []string{"", "?type=transfer", "?type=INCOME"} {
			rec := doRequest(r, "GET", "/dashboard/categories"+query, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%q: expected 400, got %d", query, rec.Code)
			}
		}
	})
}
