package errs

import "fmt"

// Kind categorizes application errors for HTTP status mapping.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates the submitted URL was empty or malformed (HTTP 400).
	InvalidInput
	// Unreachable indicates the target site could not be fetched or answered
	// with a non-2xx status (HTTP 502).
	Unreachable
	// Blocked indicates the target answered with too little content to grade,
	// usually a captcha or bot interstitial (HTTP 422).
	Blocked
	// Timeout indicates the target took too long to respond (HTTP 504).
	Timeout
	// ParsingFailed indicates the response could not be parsed (HTTP 500).
	ParsingFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case Unreachable:
		return "unreachable"
	case Blocked:
		return "blocked"
	case Timeout:
		return "timeout"
	case ParsingFailed:
		return "parsing_failed"
	default:
		return "unknown"
	}
}

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the target domain
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsFetchFailure reports whether the error came from retrieving the target
// page. Blocked is a specialization of a fetch failure.
func (e *AppError) IsFetchFailure() bool {
	return e.Kind == Unreachable || e.Kind == Blocked
}
