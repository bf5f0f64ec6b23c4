package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

func TestSaveVerificationEnforcesPeriodUniqueness(t *testing.T) {
	store := NewStore()

	first, err := store.SaveVerification(context.Background(), entities.RoomVerification{PeriodID: 1})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	_, err = store.SaveVerification(context.Background(), entities.RoomVerification{PeriodID: 1})
	if !errors.Is(err, domainerrors.ErrVerificationExists) {
		t.Fatalf("expected verification exists, got %v", err)
	}

	// The existing report itself can be rewritten.
	first.Form.Description = "revised"
	if _, err := store.SaveVerification(context.Background(), first); err != nil {
		t.Fatalf("rewrite existing report: %v", err)
	}
}

func TestSaveAttendanceUpsertsOnPair(t *testing.T) {
	store := NewStore()

	first, err := store.SaveAttendance(context.Background(), entities.Attendance{
		PeriodID:  1,
		UserID:    7,
		IsPresent: true,
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	second, err := store.SaveAttendance(context.Background(), entities.Attendance{
		PeriodID:  1,
		UserID:    7,
		IsPresent: false,
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.AttendanceID != first.AttendanceID {
		t.Fatalf("expected upsert, got new id %d", second.AttendanceID)
	}

	items, total, err := store.ListAttendanceByPeriod(context.Background(), 1, ports.Page{Size: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("rows = %d (total %d), want exactly 1", len(items), total)
	}
	if items[0].IsPresent {
		t.Fatal("upsert did not rewrite is_present")
	}
}

func TestListPeriodsAppliesFilterAndPage(t *testing.T) {
	store := NewStore()
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		roomID := int64(1)
		if i%2 == 0 {
			roomID = 2
		}
		if _, err := store.SavePeriod(context.Background(), entities.Period{
			TeacherID: 10,
			RoomID:    roomID,
			ClassID:   3,
			Date:      date,
			Slot:      entities.SlotMorning,
		}); err != nil {
			t.Fatalf("save period: %v", err)
		}
	}

	items, total, err := store.ListPeriods(context.Background(), ports.PeriodFilter{RoomID: 2}, ports.Page{Size: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(items) != 2 {
		t.Fatalf("page rows = %d, want 2", len(items))
	}

	_, total, err = store.ListPeriods(context.Background(), ports.PeriodFilter{}, ports.Page{Size: 10})
	if err != nil {
		t.Fatalf("unfiltered list: %v", err)
	}
	if total != 5 {
		t.Fatalf("unfiltered total = %d, want 5", total)
	}
}
