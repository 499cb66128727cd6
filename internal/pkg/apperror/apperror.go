package apperror

import "errors"

// Kind classifies a failure so callers and the HTTP layer can react without
// inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindFailedPrecondition
	KindValidation
)

// Error is a kind-tagged error. Domain packages declare their sentinel errors
// with New and the response layer switches on KindOf.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of err, or KindInternal when err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
