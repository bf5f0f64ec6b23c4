package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

type attendanceKey struct {
	periodID int64
	userID   int64
}

// Store is an in-memory adapter implementing the scheduling repository
// ports. It enforces the period_id unique constraint on verifications and
// the (period, user) upsert rule on attendance, matching the SQL schema.
type Store struct {
	mu sync.RWMutex

	periods       map[int64]entities.Period
	verifications map[int64]entities.RoomVerification
	attendance    map[attendanceKey]entities.Attendance

	nextPeriodID       int64
	nextVerificationID int64
	nextAttendanceID   int64
}

// NewStore builds an empty in-memory adapter.
func NewStore() *Store {
	return &Store{
		periods:       make(map[int64]entities.Period),
		verifications: make(map[int64]entities.RoomVerification),
		attendance:    make(map[attendanceKey]entities.Attendance),
	}
}

// Now lets the store double as the Clock port in test wiring.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) SavePeriod(_ context.Context, period entities.Period) (entities.Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if period.PeriodID == 0 {
		s.nextPeriodID++
		period.PeriodID = s.nextPeriodID
	}
	s.periods[period.PeriodID] = period
	return period, nil
}

func (s *Store) FindPeriodByID(_ context.Context, periodID int64) (entities.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	period, ok := s.periods[periodID]
	if !ok {
		return entities.Period{}, domainerrors.ErrPeriodNotFound
	}
	return period, nil
}

func (s *Store) PeriodExists(_ context.Context, periodID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.periods[periodID]
	return ok, nil
}

func (s *Store) DeletePeriod(_ context.Context, periodID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.periods[periodID]; !ok {
		return domainerrors.ErrPeriodNotFound
	}
	delete(s.periods, periodID)
	return nil
}

func (s *Store) ListPeriods(_ context.Context, filter ports.PeriodFilter, page ports.Page) ([]entities.Period, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Period, 0)
	for _, period := range s.periods {
		if filter.Matches(period) {
			matched = append(matched, period)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].PeriodID < matched[j].PeriodID })

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return append([]entities.Period(nil), matched[start:end]...), total, nil
}

func (s *Store) SaveVerification(_ context.Context, verification entities.RoomVerification) (entities.RoomVerification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// period_id uniqueness backstop.
	for _, existing := range s.verifications {
		if existing.VerificationID != verification.VerificationID && existing.PeriodID == verification.PeriodID {
			return entities.RoomVerification{}, domainerrors.ErrVerificationExists
		}
	}

	if verification.VerificationID == 0 {
		s.nextVerificationID++
		verification.VerificationID = s.nextVerificationID
	}
	s.verifications[verification.VerificationID] = verification
	return verification, nil
}

func (s *Store) FindVerificationByPeriod(_ context.Context, periodID int64) (entities.RoomVerification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, verification := range s.verifications {
		if verification.PeriodID == periodID {
			return verification, nil
		}
	}
	return entities.RoomVerification{}, domainerrors.ErrVerificationNotFound
}

func (s *Store) VerificationExistsForPeriod(_ context.Context, periodID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, verification := range s.verifications {
		if verification.PeriodID == periodID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SaveAttendance(_ context.Context, attendance entities.Attendance) (entities.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := attendanceKey{periodID: attendance.PeriodID, userID: attendance.UserID}
	if existing, ok := s.attendance[key]; ok {
		existing.IsPresent = attendance.IsPresent
		existing.RecordedAt = attendance.RecordedAt
		s.attendance[key] = existing
		return existing, nil
	}

	s.nextAttendanceID++
	attendance.AttendanceID = s.nextAttendanceID
	s.attendance[key] = attendance
	return attendance, nil
}

func (s *Store) ListAttendanceByPeriod(_ context.Context, periodID int64, page ports.Page) ([]entities.Attendance, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Attendance, 0)
	for _, attendance := range s.attendance {
		if attendance.PeriodID == periodID {
			matched = append(matched, attendance)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].UserID < matched[j].UserID })

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return append([]entities.Attendance(nil), matched[start:end]...), total, nil
}
