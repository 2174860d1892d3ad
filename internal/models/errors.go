package models

import "errors"

var (
	// ErrValidation marks a malformed or missing request body.
	ErrValidation = errors.New("validation error")
	// ErrAuthentication marks a failed webhook signature check.
	ErrAuthentication = errors.New("authentication error")
	// ErrTransient marks store, archive, queue or bus failures that are worth retrying.
	ErrTransient = errors.New("transient storage error")
	// ErrProcessingInconsistency is returned when the processor finds no record to update.
	ErrProcessingInconsistency = errors.New("processing inconsistency")
	ErrNotFound                = errors.New("not found")
	ErrDuplicateKey            = errors.New("duplicate key")
)
