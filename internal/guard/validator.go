package guard

import "context"

// Validator is the interface every content validator must implement.
// Implementations must respect context deadlines and return quickly.
type Validator interface {
	// Name returns the validator's unique identifier (e.g., "pii").
	Name() string

	// Validate scans text for sensitive content. When content is found,
	// Failed is true and Redacted carries the text with every recognized
	// span replaced. A returned error means the validator itself could not
	// run, not that content was found.
	Validate(ctx context.Context, text string) (*Outcome, error)
}

// Outcome is the result of a single validator run.
type Outcome struct {
	Failed   bool
	Redacted string
}

// StepStatus classifies how one validator step of a screen concluded.
type StepStatus int

const (
	StepClean StepStatus = iota
	StepDetected
	StepErrored
)

// String returns the lowercase step status name.
func (s StepStatus) String() string {
	switch s {
	case StepClean:
		return "clean"
	case StepDetected:
		return "detected"
	case StepErrored:
		return "errored"
	default:
		return "unknown"
	}
}
