package response

import (
	"errors"
	"net/http"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
		Conflict(w, "Attendance already marked")

	// Default: never leak internal detail to the caller
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
