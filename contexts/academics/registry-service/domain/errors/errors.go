package errors

import "errors"

var (
	ErrForbidden = errors.New("forbidden")

	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrClassNotFound      = errors.New("class not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrRoomNotFound       = errors.New("room not found")

	ErrEnrollmentExists = errors.New("user already enrolled in class")
	ErrRoomNumberTaken  = errors.New("room number already in use")
	ErrClassNumberTaken = errors.New("class number already in use for course")

	ErrInvalidCourseInput = errors.New("invalid course input")
	ErrInvalidTotalHours  = errors.New("total hours out of range")
	ErrInvalidShift       = errors.New("invalid shift")
	ErrInvalidClassRole   = errors.New("invalid class role")
	ErrInvalidRoomType    = errors.New("invalid room type")
	ErrInvalidRoomNumber  = errors.New("invalid room number")
	ErrInvalidUserInput   = errors.New("invalid user input")
)
