package employee

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type RegisterEmployeeRequest struct {
	EmployeeID   string  `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Shift        string  `json:"shift"`
	DepartmentID *string `json:"department_id,omitempty"`
	PositionID   *string `json:"position_id,omitempty"`
	FaceImage    *string `json:"face_image,omitempty"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone format, must be 10 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeID   string  `json:"-"`
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Shift        *string `json:"shift,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	PositionID   *string `json:"position_id,omitempty"`
	FaceImage    *string `json:"face_image,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone format, must be 10 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DeviceRegistrationRequest is an employee registration payload pushed by a
// face terminal over the ingestion channel.
type DeviceRegistrationRequest struct {
	EmployeeID       string  `json:"employeeId"`
	EmployeeName     string  `json:"employeeName"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
	Shift            string  `json:"shift"`
	RegistrationDate *string `json:"registrationDate,omitempty"`
	FaceBase64       *string `json:"faceBase64,omitempty"`
}

func (r *DeviceRegistrationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeName",
			Message: "employeeName is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	FullName         string  `json:"full_name"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Shift            string  `json:"shift"`
	DepartmentID     *string `json:"department_id,omitempty"`
	DepartmentName   *string `json:"department,omitempty"`
	PositionID       *string `json:"position_id,omitempty"`
	PositionName     *string `json:"position,omitempty"`
	FaceImage        *string `json:"face_image,omitempty"`
	RegistrationDate *string `json:"registration_date,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
