package errors

import "errors"

var (
	ErrForbidden = errors.New("forbidden")

	ErrPeriodNotFound       = errors.New("period not found")
	ErrVerificationNotFound = errors.New("room verification not found")
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrClassNotFound        = errors.New("class not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrVerificationExists = errors.New("room verification already exists for period")

	ErrInvalidSlot             = errors.New("invalid slot")
	ErrInvalidPeriodDate       = errors.New("invalid period date")
	ErrInvalidVerificationForm = errors.New("invalid verification form")
)
