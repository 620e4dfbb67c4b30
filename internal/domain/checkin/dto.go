package checkin

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

// DeviceEventRequest is the raw scan payload a face terminal publishes on
// the ingestion channel. Timestamp is RFC3339; when the device clock is not
// set the field is empty and the receive time is used instead.
type DeviceEventRequest struct {
	DeviceID     string  `json:"deviceId"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
	Timestamp    string  `json:"timestamp,omitempty"`
	Status       *string `json:"status,omitempty"`
	FaceBase64   *string `json:"faceBase64,omitempty"`
}

func (r *DeviceEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "deviceId",
			Message: "deviceId is required",
		})
	}

	if r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordScanRequest creates a scan event through the HTTP API, used for
// manual corrections and test data.
type RecordScanRequest struct {
	EmployeeID string  `json:"employee_id"`
	DeviceID   string  `json:"device_id"`
	Timestamp  string  `json:"timestamp,omitempty"`
	StatusHint *string `json:"status_hint,omitempty"`
}

func (r *RecordScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScanEventResponse struct {
	ID         string  `json:"id"`
	DeviceID   string  `json:"device_id"`
	EmployeeID string  `json:"employee_id,omitempty"`
	Timestamp  string  `json:"timestamp"`
	StatusHint *string `json:"status_hint,omitempty"`
}

// TodayScanResponse is one row of the live "who scanned today" feed, the
// scan joined with roster details.
type TodayScanResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	FaceImage  string `json:"face_image,omitempty"`
	CheckIn    string `json:"check_in"`
}
