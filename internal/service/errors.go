package service

import "errors"

var (
	// ErrNotPending is returned when a validation decision targets a
	// project that is not awaiting one.
	ErrNotPending = errors.New("project is not pending validation")
)
