package voicesearch

import "github.com/cockroachdb/errors"

// ErrorCode represents specific error codes for skill operations.
type ErrorCode int

const (
	// ErrCodeEmptyQuery is returned when a query has no searchable words.
	ErrCodeEmptyQuery ErrorCode = iota + 1000

	// ErrCodeInvalidApplication is returned when a request targets another skill.
	ErrCodeInvalidApplication

	// ErrCodeInvalidReply is returned when a response cannot be rendered.
	ErrCodeInvalidReply

	// ErrCodeUnsupportedRequest is returned for request types the skill does not handle.
	ErrCodeUnsupportedRequest

	// ErrCodeDatasetUnavailable is returned when a dataset cannot be loaded.
	ErrCodeDatasetUnavailable
)

// String returns the human-readable string representation of the error code.
// This implements the fmt.Stringer interface.
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeEmptyQuery:
		return "empty query"
	case ErrCodeInvalidApplication:
		return "invalid application"
	case ErrCodeInvalidReply:
		return "invalid reply"
	case ErrCodeUnsupportedRequest:
		return "unsupported request"
	case ErrCodeDatasetUnavailable:
		return "dataset unavailable"
	default:
		return "unknown error"
	}
}

// newErrorWithCode creates a new error with a code and message.
func newErrorWithCode(code ErrorCode, msg string) error {
	err := errors.New(msg)
	return errors.WithSecondaryError(err, errors.Newf("code: %d", int(code)))
}

// Common errors returned by the search engine and the skill.
var (
	// ErrEmptyQuery is returned when a query normalizes to zero words.
	ErrEmptyQuery = newErrorWithCode(ErrCodeEmptyQuery, "voicesearch: empty query")

	// ErrInvalidApplication is returned when the request application id does not match the skill id.
	ErrInvalidApplication = newErrorWithCode(ErrCodeInvalidApplication, "voicesearch: invalid application id")

	// ErrInvalidReply is returned when a reply fails validation before serialization.
	ErrInvalidReply = newErrorWithCode(ErrCodeInvalidReply, "voicesearch: invalid reply")

	// ErrUnsupportedRequest is returned for unknown request types.
	ErrUnsupportedRequest = newErrorWithCode(ErrCodeUnsupportedRequest, "voicesearch: unsupported request type")

	// ErrDatasetUnavailable is returned when a dataset cannot be read or decoded.
	ErrDatasetUnavailable = newErrorWithCode(ErrCodeDatasetUnavailable, "voicesearch: dataset unavailable")
)
