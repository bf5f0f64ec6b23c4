package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// Store is an in-memory adapter implementing the registry repository ports.
// It is intended for tests and local development wiring, and enforces the
// same uniqueness constraints the SQL schema carries so check-then-act races
// are rejected here too.
type Store struct {
	mu sync.RWMutex

	users       map[int64]entities.User
	courses     map[int64]entities.Course
	classes     map[int64]entities.Class
	enrollments map[entities.EnrollmentKey]entities.Enrollment
	rooms       map[int64]entities.Room

	nextUserID   int64
	nextCourseID int64
	nextClassID  int64
	nextRoomID   int64
}

// NewStore builds an empty in-memory adapter.
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]entities.User),
		courses:     make(map[int64]entities.Course),
		classes:     make(map[int64]entities.Class),
		enrollments: make(map[entities.EnrollmentKey]entities.Enrollment),
		rooms:       make(map[int64]entities.Room),
	}
}

// Now lets the store double as the Clock port in test wiring.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) SaveUser(_ context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.UserID == 0 {
		s.nextUserID++
		user.UserID = s.nextUserID
	}
	s.users[user.UserID] = user
	return user, nil
}

func (s *Store) FindUserByID(_ context.Context, userID int64) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) UserExists(_ context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) ListUsers(_ context.Context, page ports.Page) ([]entities.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entities.User, 0, len(s.users))
	for _, user := range s.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	return pageOfUsers(all, page), int64(len(all)), nil
}

func (s *Store) SaveCourse(_ context.Context, course entities.Course) (entities.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.CourseID == 0 {
		s.nextCourseID++
		course.CourseID = s.nextCourseID
	}
	s.courses[course.CourseID] = course
	return course, nil
}

func (s *Store) FindCourseByID(_ context.Context, courseID int64) (entities.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[courseID]
	if !ok {
		return entities.Course{}, domainerrors.ErrCourseNotFound
	}
	return course, nil
}

func (s *Store) CourseExists(_ context.Context, courseID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.courses[courseID]
	return ok, nil
}

func (s *Store) DeleteCourse(_ context.Context, courseID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[courseID]; !ok {
		return domainerrors.ErrCourseNotFound
	}
	delete(s.courses, courseID)
	return nil
}

func (s *Store) ListCourses(_ context.Context, page ports.Page) ([]entities.Course, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entities.Course, 0, len(s.courses))
	for _, course := range s.courses {
		all = append(all, course)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CourseID < all[j].CourseID })
	return pageOfCourses(all, page), int64(len(all)), nil
}

func (s *Store) SaveClass(_ context.Context, class entities.Class) (entities.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Composite (course, number) uniqueness backstop.
	for _, existing := range s.classes {
		if existing.ClassID != class.ClassID && existing.Key == class.Key {
			return entities.Class{}, domainerrors.ErrClassNumberTaken
		}
	}

	if class.ClassID == 0 {
		s.nextClassID++
		class.ClassID = s.nextClassID
	}
	s.classes[class.ClassID] = class
	return class, nil
}

func (s *Store) FindClassByID(_ context.Context, classID int64) (entities.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classes[classID]
	if !ok {
		return entities.Class{}, domainerrors.ErrClassNotFound
	}
	return class, nil
}

func (s *Store) ClassExists(_ context.Context, classID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.classes[classID]
	return ok, nil
}

func (s *Store) MaxClassNumber(_ context.Context, courseID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	max := 0
	for _, class := range s.classes {
		if class.Key.CourseID == courseID && class.Key.Number > max {
			max = class.Key.Number
		}
	}
	return max, nil
}

func (s *Store) DeleteClass(_ context.Context, classID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[classID]; !ok {
		return domainerrors.ErrClassNotFound
	}
	delete(s.classes, classID)
	return nil
}

func (s *Store) ListClasses(_ context.Context, courseID int64, page ports.Page) ([]entities.Class, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entities.Class, 0)
	for _, class := range s.classes {
		if class.Key.CourseID == courseID {
			all = append(all, class)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key.Number < all[j].Key.Number })
	return pageOfClasses(all, page), int64(len(all)), nil
}

func (s *Store) SaveEnrollment(_ context.Context, enrollment entities.Enrollment) (entities.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[enrollment.Key]; ok {
		return entities.Enrollment{}, domainerrors.ErrEnrollmentExists
	}
	s.enrollments[enrollment.Key] = enrollment
	return enrollment, nil
}

func (s *Store) FindEnrollment(_ context.Context, key entities.EnrollmentKey) (entities.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollment, ok := s.enrollments[key]
	if !ok {
		return entities.Enrollment{}, domainerrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (s *Store) DeleteEnrollment(_ context.Context, key entities.EnrollmentKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[key]; !ok {
		return domainerrors.ErrEnrollmentNotFound
	}
	delete(s.enrollments, key)
	return nil
}

func (s *Store) ListEnrollmentsByClass(_ context.Context, classID int64, page ports.Page) ([]entities.Enrollment, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entities.Enrollment, 0)
	for _, enrollment := range s.enrollments {
		if enrollment.Key.ClassID == classID {
			all = append(all, enrollment)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key.UserID < all[j].Key.UserID })
	return pageOfEnrollments(all, page), int64(len(all)), nil
}

func (s *Store) SaveRoom(_ context.Context, room entities.Room) (entities.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Room number uniqueness backstop.
	for _, existing := range s.rooms {
		if existing.RoomID != room.RoomID && existing.Number == room.Number {
			return entities.Room{}, domainerrors.ErrRoomNumberTaken
		}
	}

	if room.RoomID == 0 {
		s.nextRoomID++
		room.RoomID = s.nextRoomID
	}
	s.rooms[room.RoomID] = room
	return room, nil
}

func (s *Store) FindRoomByID(_ context.Context, roomID int64) (entities.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return entities.Room{}, domainerrors.ErrRoomNotFound
	}
	return room, nil
}

func (s *Store) RoomExists(_ context.Context, roomID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rooms[roomID]
	return ok, nil
}

func (s *Store) RoomNumberExists(_ context.Context, number int, excludeRoomID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.RoomID != excludeRoomID && room.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) DeleteRoom(_ context.Context, roomID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		return domainerrors.ErrRoomNotFound
	}
	delete(s.rooms, roomID)
	return nil
}

func (s *Store) ListRooms(_ context.Context, page ports.Page) ([]entities.Room, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entities.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		all = append(all, room)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].RoomID < all[j].RoomID })
	return pageOfRooms(all, page), int64(len(all)), nil
}

func pageBounds(total int, page ports.Page) (int, int) {
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Size
	if end > total {
		end = total
	}
	return start, end
}

func pageOfUsers(all []entities.User, page ports.Page) []entities.User {
	start, end := pageBounds(len(all), page)
	return append([]entities.User(nil), all[start:end]...)
}

func pageOfCourses(all []entities.Course, page ports.Page) []entities.Course {
	start, end := pageBounds(len(all), page)
	return append([]entities.Course(nil), all[start:end]...)
}

func pageOfClasses(all []entities.Class, page ports.Page) []entities.Class {
	start, end := pageBounds(len(all), page)
	return append([]entities.Class(nil), all[start:end]...)
}

func pageOfEnrollments(all []entities.Enrollment, page ports.Page) []entities.Enrollment {
	start, end := pageBounds(len(all), page)
	return append([]entities.Enrollment(nil), all[start:end]...)
}

func pageOfRooms(all []entities.Room, page ports.Page) []entities.Room {
	start, end := pageBounds(len(all), page)
	return append([]entities.Room(nil), all[start:end]...)
}
