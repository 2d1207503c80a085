package controllers

import "errors"

// Workflow error kinds. The booking and cancellation transactions return
// these so the handlers can map each one to its boundary message.
var (
	errNotFound          = errors.New("record not found")
	errDoctorUnavailable = errors.New("doctor not available")
	errMissingContact    = errors.New("contact number missing")
	errSlotUnavailable   = errors.New("slot not available")
	errUnauthorized      = errors.New("unauthorized action")
	errAlreadyCancelled  = errors.New("appointment already cancelled")

	// errLedgerConflict signals that the versioned ledger update lost a
	// compare-and-swap race and the whole read-check-commit cycle must be
	// retried.
	errLedgerConflict = errors.New("ledger version conflict")
)
