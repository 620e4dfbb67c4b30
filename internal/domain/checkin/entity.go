package checkin

import (
	"time"
)

// ScanEvent is one raw scan recorded by a face terminal. Timestamps are
// stored and compared in UTC. EmployeeID is empty when the device could not
// resolve the face to a registered employee; such events are kept for audit
// but never attributed to anyone. StatusHint is free text from the device
// and is not authoritative for check-in/check-out pairing.
type ScanEvent struct {
	ID         string
	DeviceID   string
	EmployeeID string
	Timestamp  time.Time
	FaceID     *string
	StatusHint *string
	CreatedAt  time.Time
}
