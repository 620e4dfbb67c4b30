package response

import (
	"errors"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/position"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
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
	// Roster domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee id already registered")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")

	// Reconciliation errors
	case errors.Is(err, report.ErrUnclassifiedShift):
		BadRequest(w, "Employee shift is not a recognized value", nil)
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
