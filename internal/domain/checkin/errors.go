package checkin

import "errors"

var (
	ErrScanEventNotFound = errors.New("scan event not found")
)
