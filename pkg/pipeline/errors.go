package pipeline

import "errors"

// ErrorKind tags the internal error categories spec §7 names. None of these
// escape the pipeline except MalformedModel (returned by pkg/models'
// ReadBlob and LoadFile as models.ErrMalformedModel) and UnknownEra (rejected at the pkg/chardet API
// boundary); DecodeFailure and EmptyInput are handled locally and never
// surface as a Go error.
type ErrorKind int

const (
	KindDecodeFailure ErrorKind = iota
	KindEmptyInput
	KindMalformedModel
	KindUnknownEra
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecodeFailure:
		return "decode_failure"
	case KindEmptyInput:
		return "empty_input"
	case KindMalformedModel:
		return "malformed_model"
	case KindUnknownEra:
		return "unknown_era"
	default:
		return "unknown"
	}
}

// Error wraps an internal failure with its Kind, teacher-idiom
// fmt.Errorf("...: %w", err) wrapping via Unwrap.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// ErrUnknownEra is the sentinel pkg/chardet returns when Options.Era is
// zero or carries unrecognized bits (spec §7: "UnknownEra ... rejected at
// the API boundary").
var ErrUnknownEra = errors.New("pipeline: unknown or empty encoding era")
