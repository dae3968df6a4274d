package services

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/samyog8/community-events-backend/apperrors"
	"github.com/samyog8/community-events-backend/models"
)

// Two (or twenty) concurrent submissions with the same new email and event
// must end with exactly one live registration; the rest observe the
// duplicate and fail.
func TestConcurrentDuplicateRegistration(t *testing.T) {
	db := newTestDB(t)
	// sqlite allows one writer at a time; a single connection keeps
	// concurrent write transactions queued instead of failing with busy
	// errors.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	svc := NewRegistrationService(db)
	event := mustCreate(t, db, testEvent(futureDate(7), 100))

	const attempts = 20
	var successes, duplicates, unexpected int32
	var wg sync.WaitGroup
	wg.Add(attempts)

	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RegisterForEvent(RegisterInput{
				EventID:   event.ID,
				FirstName: "Grace",
				LastName:  "Hopper",
				Email:     "grace@example.com",
			})
			switch {
			case err == nil:
				atomic.AddInt32(&successes, 1)
			case apperrors.IsValidation(err) || apperrors.IsDuplicate(err):
				atomic.AddInt32(&duplicates, 1)
			default:
				t.Logf("unexpected error: %v", err)
				atomic.AddInt32(&unexpected, 1)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
	if duplicates != attempts-1 {
		t.Errorf("duplicate failures = %d, want %d", duplicates, attempts-1)
	}
	if unexpected != 0 {
		t.Errorf("unexpected errors = %d, want 0", unexpected)
	}

	var live int64
	db.Model(&models.Registration{}).
		Where("event_id = ? AND status <> ?", event.ID, models.StatusCancelled).
		Count(&live)
	if live != 1 {
		t.Errorf("live registrations in DB = %d, want 1", live)
	}

	var participants int64
	db.Model(&models.Participant{}).Count(&participants)
	if participants != 1 {
		t.Errorf("participants in DB = %d, want 1", participants)
	}
}
