package ports

import (
	"testing"
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
)

func TestPeriodFilterCompilesOnlySetFields(t *testing.T) {
	var empty PeriodFilter
	if got := len(empty.Predicates()); got != 0 {
		t.Fatalf("empty filter compiled %d predicates, want 0", got)
	}

	one := PeriodFilter{RoomID: 7}
	predicates := one.Predicates()
	if len(predicates) != 1 {
		t.Fatalf("single-field filter compiled %d predicates, want 1", len(predicates))
	}
	if predicates[0].Field != "room_id" {
		t.Fatalf("predicate field = %s, want room_id", predicates[0].Field)
	}

	full := PeriodFilter{
		TeacherID: 1,
		RoomID:    2,
		ClassID:   3,
		Slot:      entities.SlotMorning,
		Date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	if got := len(full.Predicates()); got != 5 {
		t.Fatalf("full filter compiled %d predicates, want 5", got)
	}

	// Zero and negative ids follow the unset convention.
	negative := PeriodFilter{TeacherID: -1, RoomID: 0, ClassID: 0}
	if got := len(negative.Predicates()); got != 0 {
		t.Fatalf("non-positive ids compiled %d predicates, want 0", got)
	}
}

func TestPeriodFilterMatches(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	period := entities.Period{
		TeacherID: 1,
		RoomID:    2,
		ClassID:   3,
		Date:      date,
		Slot:      entities.SlotMorning,
	}

	if !(PeriodFilter{}).Matches(period) {
		t.Fatal("empty filter must match everything")
	}
	if !(PeriodFilter{RoomID: 2, Slot: entities.SlotMorning}).Matches(period) {
		t.Fatal("matching conjunction should pass")
	}
	if (PeriodFilter{RoomID: 2, Slot: entities.SlotEvening}).Matches(period) {
		t.Fatal("one failing clause must reject the period")
	}
	if (PeriodFilter{Date: date.AddDate(0, 0, 1)}).Matches(period) {
		t.Fatal("different date must reject the period")
	}
}

func TestPageNormalizeClamps(t *testing.T) {
	got := Page{Number: -3, Size: 0}.Normalize()
	if got.Number != 0 || got.Size != 1 {
		t.Fatalf("normalized = %+v, want number=0 size=1", got)
	}
}
