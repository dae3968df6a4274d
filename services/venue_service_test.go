package services

import (
	"testing"

	"github.com/samyog8/community-events-backend/apperrors"
	"github.com/samyog8/community-events-backend/models"
)

func TestVenueCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewVenueService(db)

	venue, err := svc.Create(VenueInput{
		Name:     "Community Hall",
		Address:  "123 Main Street",
		City:     "London",
		PostCode: "E1 1AB",
		Capacity: 200,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !venue.IsActive {
		t.Error("new venue should be active")
	}

	venue, err = svc.Update(venue.ID, VenueInput{
		Name: "Community Hall", Address: "125 Main Street",
		City: "London", PostCode: "E1 1AB", Capacity: 180, IsActive: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if venue.Address != "125 Main Street" || venue.Capacity != 180 {
		t.Errorf("updated venue = %+v", venue)
	}

	inactive, err := svc.ToggleStatus(venue.ID)
	if err != nil || inactive {
		t.Fatalf("ToggleStatus = %v, %v", inactive, err)
	}

	venues, err := svc.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(venues) != 0 {
		t.Errorf("active venues = %d, want 0", len(venues))
	}

	if err := svc.Delete(venue.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(venue.ID); !apperrors.IsNotFound(err) {
		t.Errorf("Get after delete err = %v, want not-found", err)
	}
}

func TestVenueDeleteOrphansEvents(t *testing.T) {
	db := newTestDB(t)
	svc := NewVenueService(db)
	venue, err := svc.Create(VenueInput{Name: "City Park Pavilion", Address: "45 Park Lane", Capacity: 150})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	event := testEvent(futureDate(7), 10)
	event.VenueID = &venue.ID
	mustCreate(t, db, event)

	if err := svc.Delete(venue.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var got models.Event
	if err := db.First(&got, event.ID).Error; err != nil {
		t.Fatalf("event deleted along with venue: %v", err)
	}
	if got.VenueID != nil {
		t.Errorf("event venue_id = %v, want nil", *got.VenueID)
	}
}

func TestCheckAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := NewVenueService(db)
	venue, err := svc.Create(VenueInput{Name: "Library Conference Room", Address: "78 High Street", Capacity: 50})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	day := futureDate(7)
	booked := testEvent(day, 10)
	booked.VenueID = &venue.ID
	booked.StartTime = "10:00"
	booked.EndTime = "12:00"
	mustCreate(t, db, booked)

	inactiveClash := testEvent(day, 10)
	inactiveClash.VenueID = &venue.ID
	inactiveClash.StartTime = "14:00"
	inactiveClash.EndTime = "16:00"
	inactiveClash.IsActive = false
	mustCreate(t, db, inactiveClash)

	tests := []struct {
		name      string
		start     string
		end       string
		excludeID uint
		want      bool
	}{
		{"overlapping window", "11:00", "13:00", 0, false},
		{"free slot after", "12:00", "14:00", 0, true},
		{"inactive event does not block", "14:30", "15:30", 0, true},
		{"editing the booked event itself", "11:00", "13:00", booked.ID, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CheckAvailability(venue.ID, day, tt.start, tt.end, tt.excludeID)
			if err != nil {
				t.Fatalf("CheckAvailability: %v", err)
			}
			if got != tt.want {
				t.Errorf("available = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("bad window", func(t *testing.T) {
		if _, err := svc.CheckAvailability(venue.ID, day, "12:00", "11:00", 0); !apperrors.IsValidation(err) {
			t.Errorf("err = %v, want validation", err)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		if _, err := svc.CheckAvailability(9999, day, "10:00", "11:00", 0); !apperrors.IsNotFound(err) {
			t.Errorf("err = %v, want not-found", err)
		}
	})
}
