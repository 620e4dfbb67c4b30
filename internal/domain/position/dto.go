package position

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePositionRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
}
