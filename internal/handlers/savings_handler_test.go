package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

// --- mock savings service ---

type mockSavingsService struct {
	createEnvelopeFn   func(userID int64, in services.EnvelopeInput) (*services.EnvelopeView, error)
	getUserEnvelopesFn func(userID int64) []services.EnvelopeView
	getEnvelopeByIDFn  func(userID, envelopeID int64) (*services.EnvelopeView, error)
	updateEnvelopeFn   func(userID, envelopeID int64, patch services.EnvelopePatch) (*services.EnvelopeView, error)
	deleteEnvelopeFn   func(userID, envelopeID int64) error
	addAmountFn        func(userID, envelopeID int64, amount float64) (*services.EnvelopeView, error)
}

func (m *mockSavingsService) CreateEnvelope(userID int64, in services.EnvelopeInput) (*services.EnvelopeView, error) {
	if m.createEnvelopeFn != nil {
		return m.createEnvelopeFn(userID, in)
	}
	return &services.EnvelopeView{}, nil
}

func (m *mockSavingsService) GetUserEnvelopes(userID int64) []services.EnvelopeView {
	if m.getUserEnvelopesFn != nil {
		return m.getUserEnvelopesFn(userID)
	}
	return []services.EnvelopeView{}
}

func (m *mockSavingsService) GetEnvelopeByID(userID, envelopeID int64) (*services.EnvelopeView, error) {
	if m.getEnvelopeByIDFn != nil {
		return m.getEnvelopeByIDFn(userID, envelopeID)
	}
	return &services.EnvelopeView{}, nil
}

func (m *mockSavingsService) UpdateEnvelope(userID, envelopeID int64, patch services.EnvelopePatch) (*services.EnvelopeView, error) {
	if m.updateEnvelopeFn != nil {
		return m.updateEnvelopeFn(userID, envelopeID, patch)
	}
	return &services.EnvelopeView{}, nil
}

func (m *mockSavingsService) DeleteEnvelope(userID, envelopeID int64) error {
	if m.deleteEnvelopeFn != nil {
		return m.deleteEnvelopeFn(userID, envelopeID)
	}
	return nil
}

func (m *mockSavingsService) AddAmount(userID, envelopeID int64, amount float64) (*services.EnvelopeView, error) {
	if m.addAmountFn != nil {
		return m.addAmountFn(userID, envelopeID, amount)
	}
	return &services.EnvelopeView{}, nil
}

var _ services.SavingsServicer = (*mockSavingsService)(nil)

func setupSavingsRouter(handler *SavingsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/savings-envelopes", handler.CreateEnvelope)
	auth.GET("/savings-envelopes", handler.GetEnvelopes)
	auth.GET("/savings-envelopes/:id", handler.GetEnvelope)
	auth.PUT("/savings-envelopes/:id", handler.UpdateEnvelope)
	auth.DELETE("/savings-envelopes/:id", handler.DeleteEnvelope)
	auth.POST("/savings-envelopes/:id/add-amount", handler.AddAmount)
	return r
}

func envelopeViewFixture(id int64, target, current float64) *services.EnvelopeView {
	view := &services.EnvelopeView{
		SavingsEnvelope: models.SavingsEnvelope{
			Base:          models.Base{ID: id},
			UserID:        1,
			Name:          "Vacation",
			TargetAmount:  target,
			CurrentAmount: current,
		},
	}
	view.ProgressPercentage = view.Progress()
	return view
}

func TestSavingsHandler_CreateEnvelope(t *testing.T) {
	t.Run("returns 201 with the progress percentage", func(t *testing.T) {
		svc := &mockSavingsService{
			createEnvelopeFn: func(_ int64, in services.EnvelopeInput) (*services.EnvelopeView, error) {
				return envelopeViewFixture(1, in.TargetAmount, in.CurrentAmount), nil
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc))

		rec := doRequest(r, "POST", "/savings-envelopes",
			`{"name":"Vacation","target_amount":200,"current_amount":50}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["progress_percentage"].(float64) != 25 {
			t.Errorf("expected progress 25, got %v", result["progress_percentage"])
		}
	})

	t.Run("returns 400 on a missing target", func(t *testing.T) {
		r := setupSavingsRouter(NewSavingsHandler(&mockSavingsService{}))

		rec := doRequest(r, "POST", "/savings-envelopes", `{"name":"Vacation"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on a negative target", func(t *testing.T) {
		r := setupSavingsRouter(NewSavingsHandler(&mockSavingsService{}))

		rec := doRequest(r, "POST", "/savings-envelopes",
			`{"name":"Vacation","target_amount":-5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSavingsHandler_GetEnvelopes(t *testing.T) {
	svc := &mockSavingsService{
		getUserEnvelopesFn: func(int64) []services.EnvelopeView {
			return []services.EnvelopeView{*envelopeViewFixture(1, 100, 50), *envelopeViewFixture(2, 200, 50)}
		},
	}
	r := setupSavingsRouter(NewSavingsHandler(svc))

	rec := doRequest(r, "GET", "/savings-envelopes", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["total"].(float64) != 2 {
		t.Errorf("expected total 2, got %v", result["total"])
	}
}

func TestSavingsHandler_GetEnvelope(t *testing.T) {
	t.Run("returns 404 for an unknown envelope", func(t *testing.T) {
		svc := &mockSavingsService{
			getEnvelopeByIDFn: func(int64, int64) (*services.EnvelopeView, error) {
				return nil, apperrors.ErrEnvelopeNotFound
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc))

		rec := doRequest(r, "GET", "/savings-envelopes/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ENVELOPE_NOT_FOUND")
	})

	t.Run("returns 400 on a non-numeric id", func(t *testing.T) {
		r := setupSavingsRouter(NewSavingsHandler(&mockSavingsService{}))

		rec := doRequest(r, "GET", "/savings-envelopes/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 403 for another user's envelope", func(t *testing.T) {
		svc := &mockSavingsService{
			getEnvelopeByIDFn: func(int64, int64) (*services.EnvelopeView, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc))

		rec := doRequest(r, "GET", "/savings-envelopes/5", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestSavingsHandler_AddAmount(t *testing.T) {
	t.Run("returns the updated envelope", func(t *testing.T) {
		svc := &mockSavingsService{
			addAmountFn: func(_, envelopeID int64, amount float64) (*services.EnvelopeView, error) {
				return envelopeViewFixture(envelopeID, 200, 50+amount), nil
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc))

		rec := doRequest(r, "POST", "/savings-envelopes/1/add-amount", `{"amount":30}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["current_amount"].(float64) != 80 {
			t.Errorf("expected current amount 80, got %v", result["current_amount"])
		}
		if result["progress_percentage"].(float64) != 40 {
			t.Errorf("expected progress 40, got %v", result["progress_percentage"])
		}
	})

	t.Run("returns 400 on a zero amount", func(t *testing.T) {
		r := setupSavingsRouter(NewSavingsHandler(&mockSavingsService{}))

		rec := doRequest(r, "POST", "/savings-envelopes/1/add-amount", `{"amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSavingsHandler_DeleteEnvelope(t *testing.T) {
	r := setupSavingsRouter(NewSavingsHandler(&mockSavingsService{}))

	rec := doRequest(r, "DELETE", "/savings-envelopes/1", "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
