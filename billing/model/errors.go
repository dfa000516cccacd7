package model

import "errors"

var (
	// ErrInvalidServiceRecord is returned for records the calculators cannot
	// price, such as a disposition without positive hours.
	ErrInvalidServiceRecord = errors.New("invalid service record")

	ErrClientNotFound        = errors.New("client not found")
	ErrServiceRecordNotFound = errors.New("service record not found")
	ErrBillNotFound          = errors.New("bill not found")

	ErrIncompleteBillRequest    = errors.New("incomplete bill request: client and at least one service record are required")
	ErrPreviewComputationFailed = errors.New("bill preview could not be computed")
	ErrNoBillableItems          = errors.New("no billable items")

	ErrInvalidStatusTransition = errors.New("invalid bill status transition")
)
