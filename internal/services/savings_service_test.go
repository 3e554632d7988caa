package services

import (
	"testing"

	"finvault/internal/repos"
	"finvault/internal/testutil"
)

func TestSavingsService_CreateEnvelope(t *testing.T) {
	t.Run("creates an envelope with computed progress", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)

		view, err := svc.CreateEnvelope(user.ID, EnvelopeInput{Name: "Vacation", TargetAmount: 200, CurrentAmount: 50})
		testutil.AssertNoError(t, err)

		if view.ProgressPercentage != 25 {
			t.Errorf("expected progress 25, got %v", view.ProgressPercentage)
		}
	})

	t.Run("progress beyond the target is not clamped", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)

		view, err := svc.CreateEnvelope(user.ID, EnvelopeInput{Name: "Overfull", TargetAmount: 100, CurrentAmount: 150})
		testutil.AssertNoError(t, err)

		if view.ProgressPercentage != 150 {
			t.Errorf("expected progress 150, got %v", view.ProgressPercentage)
		}
	})

	t.Run("rejects a non-positive target", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)

		for _, target := range []float64{0, -100} {
			_, err := svc.CreateEnvelope(user.ID, EnvelopeInput{Name: "Bad", TargetAmount: target})
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})

	t.Run("rejects a negative current amount", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)

		_, err := svc.CreateEnvelope(user.ID, EnvelopeInput{Name: "Bad", TargetAmount: 100, CurrentAmount: -1})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSavingsService_GetEnvelopeByID(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewSavingsService(repos.NewSavingsRepo(s))
	owner := testutil.CreateTestUser(t, s)
	intruder := testutil.CreateTestUser(t, s)
	envelope := testutil.CreateTestEnvelope(t, s, owner.ID, 100, 50)

	t.Run("returns the envelope with progress to its owner", func(t *testing.T) {
		view, err := svc.GetEnvelopeByID(owner.ID, envelope.ID)
		testutil.AssertNoError(t, err)
		if view.ProgressPercentage != 50 {
			t.Errorf("expected progress 50, got %v", view.ProgressPercentage)
		}
	})

	t.Run("hides the envelope from another user", func(t *testing.T) {
		_, err := svc.GetEnvelopeByID(intruder.ID, envelope.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		_, err := svc.GetEnvelopeByID(owner.ID, 999)
		testutil.AssertAppError(t, err, "ENVELOPE_NOT_FOUND")
	})
}

func TestSavingsService_UpdateEnvelope(t *testing.T) {
	t.Run("recomputes progress after a partial update", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)
		envelope := testutil.CreateTestEnvelope(t, s, user.ID, 100, 50)

		target := 200.0
		view, err := svc.UpdateEnvelope(user.ID, envelope.ID, EnvelopePatch{TargetAmount: &target})
		testutil.AssertNoError(t, err)

		if view.ProgressPercentage != 25 {
			t.Errorf("expected progress 25 after raising the target, got %v", view.ProgressPercentage)
		}
		if view.Name != envelope.Name {
			t.Errorf("name changed to %q", view.Name)
		}
	})

	t.Run("rejects lowering the target to zero", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)
		envelope := testutil.CreateTestEnvelope(t, s, user.ID, 100, 50)

		target := 0.0
		_, err := svc.UpdateEnvelope(user.ID, envelope.ID, EnvelopePatch{TargetAmount: &target})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSavingsService_AddAmount(t *testing.T) {
	t.Run("deposits and recomputes progress", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)
		envelope := testutil.CreateTestEnvelope(t, s, user.ID, 200, 50)

		view, err := svc.AddAmount(user.ID, envelope.ID, 30)
		testutil.AssertNoError(t, err)

		if view.CurrentAmount != 80 {
			t.Errorf("expected current amount 80, got %v", view.CurrentAmount)
		}
		if view.ProgressPercentage != 40 {
			t.Errorf("expected progress 40, got %v", view.ProgressPercentage)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		user := testutil.CreateTestUser(t, s)
		envelope := testutil.CreateTestEnvelope(t, s, user.ID, 200, 50)

		for _, amount := range []float64{0, -5} {
			_, err := svc.AddAmount(user.ID, envelope.ID, amount)
			testutil.AssertAppError(t, err, "INVALID_AMOUNT")
		}
	})

	t.Run("rejects deposits by another user", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewSavingsService(repos.NewSavingsRepo(s))
		owner := testutil.CreateTestUser(t, s)
		intruder := testutil.CreateTestUser(t, s)
		envelope := testutil.CreateTestEnvelope(t, s, owner.ID, 200, 50)

		_, err := svc.AddAmount(intruder.ID, envelope.ID, 10)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestSavingsService_DeleteEnvelope(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewSavingsService(repos.NewSavingsRepo(s))
	user := testutil.CreateTestUser(t, s)
	envelope := testutil.CreateTestEnvelope(t, s, user.ID, 100, 50)

	testutil.AssertNoError(t, svc.DeleteEnvelope(user.ID, envelope.ID))

	_, err := svc.GetEnvelopeByID(user.ID, envelope.ID)
	testutil.AssertAppError(t, err, "ENVELOPE_NOT_FOUND")
}
