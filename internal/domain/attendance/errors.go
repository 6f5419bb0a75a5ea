package attendance

import "errors"

var (
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked")
)
