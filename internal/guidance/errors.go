package guidance

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for catalog loading and resolution.
var (
	// ErrNoGuidance indicates no catalog entry applies to the case.
	ErrNoGuidance = constError("no guidance for event type")

	// ErrUnsupportedSchema indicates a catalog schema version this build cannot read.
	ErrUnsupportedSchema = constError("unsupported guidance catalog schema")

	// ErrInvalidEntry indicates a malformed catalog entry.
	ErrInvalidEntry = constError("invalid guidance entry")
)
