package casemodel

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by Validate. Compare with errors.Is.
var (
	// ErrNegativeAmount indicates a claim amount below zero.
	ErrNegativeAmount = constError("claim amount must not be negative")

	// ErrMissingID indicates a case record without an identifier.
	ErrMissingID = constError("case id is required")
)
