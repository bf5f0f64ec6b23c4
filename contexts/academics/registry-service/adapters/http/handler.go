package httpadapter

import (
	"context"
	"log/slog"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application/commands"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application/queries"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
	httptransport "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateCourse commands.CreateCourseUseCase
	UpdateCourse commands.UpdateCourseUseCase
	DeleteCourse commands.DeleteCourseUseCase
	GetCourse    queries.GetCourseUseCase
	ListCourses  queries.ListCoursesUseCase

	CreateClass commands.CreateClassUseCase
	UpdateClass commands.UpdateClassUseCase
	DeleteClass commands.DeleteClassUseCase
	GetClass    queries.GetClassUseCase
	ListClasses queries.ListClassesUseCase

	EnrollUser      commands.EnrollUserUseCase
	UnenrollUser    commands.UnenrollUserUseCase
	GetEnrollment   queries.GetEnrollmentUseCase
	ListEnrollments queries.ListEnrollmentsUseCase

	CreateRoom commands.CreateRoomUseCase
	UpdateRoom commands.UpdateRoomUseCase
	DeleteRoom commands.DeleteRoomUseCase
	GetRoom    queries.GetRoomUseCase
	ListRooms  queries.ListRoomsUseCase

	UpdateUser    commands.UpdateUserUseCase
	ResetPassword commands.ResetPasswordUseCase
	GetUser       queries.GetUserUseCase
	ListUsers     queries.ListUsersUseCase

	Logger *slog.Logger
}

func (h Handler) CreateCourseHandler(ctx context.Context, actor application.Actor, request httptransport.CreateCourseRequest) (httptransport.CourseResponse, error) {
	course, err := h.CreateCourse.Execute(ctx, commands.CreateCourseCommand{
		Actor:       actor,
		Name:        request.Name,
		Acronym:     request.Acronym,
		Description: request.Description,
	})
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return courseResponse(course), nil
}

func (h Handler) UpdateCourseHandler(ctx context.Context, actor application.Actor, courseID int64, request httptransport.UpdateCourseRequest) (httptransport.CourseResponse, error) {
	course, err := h.UpdateCourse.Execute(ctx, commands.UpdateCourseCommand{
		Actor:       actor,
		CourseID:    courseID,
		Name:        request.Name,
		Acronym:     request.Acronym,
		Description: request.Description,
	})
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return courseResponse(course), nil
}

func (h Handler) DeleteCourseHandler(ctx context.Context, actor application.Actor, courseID int64) error {
	return h.DeleteCourse.Execute(ctx, commands.DeleteCourseCommand{Actor: actor, CourseID: courseID})
}

func (h Handler) GetCourseHandler(ctx context.Context, courseID int64) (httptransport.CourseResponse, error) {
	course, err := h.GetCourse.Execute(ctx, courseID)
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return courseResponse(course), nil
}

func (h Handler) ListCoursesHandler(ctx context.Context, page ports.Page) (httptransport.CourseListResponse, error) {
	result, err := h.ListCourses.Execute(ctx, page)
	if err != nil {
		return httptransport.CourseListResponse{}, err
	}
	items := make([]httptransport.CourseResponse, 0, len(result.Items))
	for _, course := range result.Items {
		items = append(items, courseResponse(course))
	}
	return httptransport.CourseListResponse{
		Items:      items,
		Total:      result.Total,
		PageNumber: result.Page.Number,
		PageSize:   result.Page.Size,
	}, nil
}

func (h Handler) CreateClassHandler(ctx context.Context, actor application.Actor, courseID int64, request httptransport.CreateClassRequest) (httptransport.ClassResponse, error) {
	class, err := h.CreateClass.Execute(ctx, commands.CreateClassCommand{
		Actor:      actor,
		CourseID:   courseID,
		TotalHours: request.TotalHours,
		Shift:      entities.Shift(request.Shift),
	})
	if err != nil {
		return httptransport.ClassResponse{}, err
	}
	return classResponse(class), nil
}

func (h Handler) UpdateClassHandler(ctx context.Context, actor application.Actor, classID int64, request httptransport.UpdateClassRequest) (httptransport.ClassResponse, error) {
	class, err := h.UpdateClass.Execute(ctx, commands.UpdateClassCommand{
		Actor:      actor,
		ClassID:    classID,
		TotalHours: request.TotalHours,
		Shift:      entities.Shift(request.Shift),
	})
	if err != nil {
		return httptransport.ClassResponse{}, err
	}
	return classResponse(class), nil
}

func (h Handler) DeleteClassHandler(ctx context.Context, actor application.Actor, classID int64) error {
	return h.DeleteClass.Execute(ctx, commands.DeleteClassCommand{Actor: actor, ClassID: classID})
}

func (h Handler) GetClassHandler(ctx context.Context, classID int64) (httptransport.ClassResponse, error) {
	class, err := h.GetClass.Execute(ctx, classID)
	if err != nil {
		return httptransport.ClassResponse{}, err
	}
	return classResponse(class), nil
}

func (h Handler) ListClassesHandler(ctx context.Context, courseID int64, page ports.Page) (httptransport.ClassListResponse, error) {
	result, err := h.ListClasses.Execute(ctx, courseID, page)
	if err != nil {
		return httptransport.ClassListResponse{}, err
	}
	items := make([]httptransport.ClassResponse, 0, len(result.Items))
	for _, class := range result.Items {
		items = append(items, classResponse(class))
	}
	return httptransport.ClassListResponse{
		Items:      items,
		Total:      result.Total,
		PageNumber: result.Page.Number,
		PageSize:   result.Page.Size,
	}, nil
}

func (h Handler) EnrollUserHandler(ctx context.Context, actor application.Actor, classID int64, request httptransport.EnrollUserRequest) (httptransport.EnrollmentResponse, error) {
	enrollment, err := h.EnrollUser.Execute(ctx, commands.EnrollUserCommand{
		Actor:   actor,
		ClassID: classID,
		UserID:  request.UserID,
		Role:    entities.ClassRole(request.Role),
	})
	if err != nil {
		return httptransport.EnrollmentResponse{}, err
	}
	return enrollmentResponse(enrollment), nil
}

func (h Handler) UnenrollUserHandler(ctx context.Context, actor application.Actor, classID int64, userID int64) error {
	return h.UnenrollUser.Execute(ctx, commands.UnenrollUserCommand{
		Actor:   actor,
		ClassID: classID,
		UserID:  userID,
	})
}

func (h Handler) GetEnrollmentHandler(ctx context.Context, classID int64, userID int64) (httptransport.EnrollmentResponse, error) {
	enrollment, err := h.GetEnrollment.Execute(ctx, entities.EnrollmentKey{ClassID: classID, UserID: userID})
	if err != nil {
		return httptransport.EnrollmentResponse{}, err
	}
	return enrollmentResponse(enrollment), nil
}

func (h Handler) ListEnrollmentsHandler(ctx context.Context, classID int64, page ports.Page) (httptransport.EnrollmentListResponse, error) {
	result, err := h.ListEnrollments.Execute(ctx, classID, page)
	if err != nil {
		return httptransport.EnrollmentListResponse{}, err
	}
	items := make([]httptransport.EnrollmentResponse, 0, len(result.Items))
	for _, enrollment := range result.Items {
		items = append(items, enrollmentResponse(enrollment))
	}
	return httptransport.EnrollmentListResponse{
		Items:      items,
		Total:      result.Total,
		PageNumber: result.Page.Number,
		PageSize:   result.Page.Size,
	}, nil
}

func (h Handler) CreateRoomHandler(ctx context.Context, actor application.Actor, request httptransport.CreateRoomRequest) (httptransport.RoomResponse, error) {
	room, err := h.CreateRoom.Execute(ctx, commands.CreateRoomCommand{
		Actor:  actor,
		Number: request.Number,
		Type:   entities.RoomType(request.Type),
	})
	if err != nil {
		return httptransport.RoomResponse{}, err
	}
	return roomResponse(room), nil
}

func (h Handler) UpdateRoomHandler(ctx context.Context, actor application.Actor, roomID int64, request httptransport.UpdateRoomRequest) (httptransport.RoomResponse, error) {
	room, err := h.UpdateRoom.Execute(ctx, commands.UpdateRoomCommand{
		Actor:  actor,
		RoomID: roomID,
		Number: request.Number,
		Type:   entities.RoomType(request.Type),
	})
	if err != nil {
		return httptransport.RoomResponse{}, err
	}
	return roomResponse(room), nil
}

func (h Handler) DeleteRoomHandler(ctx context.Context, actor application.Actor, roomID int64) error {
	return h.DeleteRoom.Execute(ctx, commands.DeleteRoomCommand{Actor: actor, RoomID: roomID})
}

func (h Handler) GetRoomHandler(ctx context.Context, roomID int64) (httptransport.RoomResponse, error) {
	room, err := h.GetRoom.Execute(ctx, roomID)
	if err != nil {
		return httptransport.RoomResponse{}, err
	}
	return roomResponse(room), nil
}

func (h Handler) ListRoomsHandler(ctx context.Context, page ports.Page) (httptransport.RoomListResponse, error) {
	result, err := h.ListRooms.Execute(ctx, page)
	if err != nil {
		return httptransport.RoomListResponse{}, err
	}
	items := make([]httptransport.RoomResponse, 0, len(result.Items))
	for _, room := range result.Items {
		items = append(items, roomResponse(room))
	}
	return httptransport.RoomListResponse{
		Items:      items,
		Total:      result.Total,
		PageNumber: result.Page.Number,
		PageSize:   result.Page.Size,
	}, nil
}

func (h Handler) UpdateUserHandler(ctx context.Context, actor application.Actor, userID int64, request httptransport.UpdateUserRequest) (httptransport.UserResponse, error) {
	user, err := h.UpdateUser.Execute(ctx, commands.UpdateUserCommand{
		Actor:  actor,
		UserID: userID,
		Name:   request.Name,
		Email:  request.Email,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (h Handler) ResetPasswordHandler(ctx context.Context, actor application.Actor, userID int64, request httptransport.ResetPasswordRequest) error {
	return h.ResetPassword.Execute(ctx, commands.ResetPasswordCommand{
		Actor:        actor,
		UserID:       userID,
		PasswordHash: request.PasswordHash,
	})
}

func (h Handler) GetUserHandler(ctx context.Context, userID int64) (httptransport.UserResponse, error) {
	user, err := h.GetUser.Execute(ctx, userID)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (h Handler) ListUsersHandler(ctx context.Context, page ports.Page) (httptransport.UserListResponse, error) {
	result, err := h.ListUsers.Execute(ctx, page)
	if err != nil {
		return httptransport.UserListResponse{}, err
	}
	items := make([]httptransport.UserResponse, 0, len(result.Items))
	for _, user := range result.Items {
		items = append(items, userResponse(user))
	}
	return httptransport.UserListResponse{
		Items:      items,
		Total:      result.Total,
		PageNumber: result.Page.Number,
		PageSize:   result.Page.Size,
	}, nil
}

func courseResponse(course entities.Course) httptransport.CourseResponse {
	return httptransport.CourseResponse{
		CourseID:    course.CourseID,
		Name:        course.Name,
		Acronym:     course.Acronym,
		Description: course.Description,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

func classResponse(class entities.Class) httptransport.ClassResponse {
	return httptransport.ClassResponse{
		ClassID:    class.ClassID,
		CourseID:   class.Key.CourseID,
		Number:     class.Key.Number,
		TotalHours: class.TotalHours,
		Shift:      string(class.Shift),
		CreatedAt:  class.CreatedAt,
		UpdatedAt:  class.UpdatedAt,
	}
}

func enrollmentResponse(enrollment entities.Enrollment) httptransport.EnrollmentResponse {
	return httptransport.EnrollmentResponse{
		ClassID:   enrollment.Key.ClassID,
		UserID:    enrollment.Key.UserID,
		Role:      string(enrollment.Role),
		CreatedAt: enrollment.CreatedAt,
	}
}

func userResponse(user entities.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func roomResponse(room entities.Room) httptransport.RoomResponse {
	return httptransport.RoomResponse{
		RoomID:    room.RoomID,
		Number:    room.Number,
		Type:      string(room.Type),
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}
