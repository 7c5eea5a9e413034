package attendance

import "errors"

// Attendance domain errors
var (
	ErrReasonRequired           = errors.New("a reason is required")
	ErrInvalidDeclarationStatus = errors.New("status must be Leave or Half-day")
	ErrUnknownEvent             = errors.New("unknown attendance event")
	ErrAttendanceNotFound       = errors.New("attendance record not found")
)
