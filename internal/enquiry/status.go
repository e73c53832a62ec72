package enquiry

import "errors"

var (
	// ErrValidation marks a status produced by local validation; nothing was sent.
	ErrValidation = errors.New("enquiry: invalid form")
	// ErrRejected marks a status for a submission the relay declined.
	ErrRejected = errors.New("enquiry: submission rejected")
	// ErrTransport marks a status for a relay that could not be reached or answered badly.
	ErrTransport = errors.New("enquiry: relay unavailable")
)

// StatusKind is the tag of a Status.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSuccess
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Status is the message shown under the form. Err is set for StatusError and
// wraps ErrValidation, ErrRejected or ErrTransport.
type Status struct {
	Kind    StatusKind
	Message string
	Visible bool
	Err     error
}

func successStatus(msg string) Status {
	return Status{Kind: StatusSuccess, Message: msg}
}

func errorStatus(msg string, err error) Status {
	return Status{Kind: StatusError, Message: msg, Err: err}
}
