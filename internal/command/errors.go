package command

import "errors"

// Kinds of command failures. A failure is scoped to the single invocation that
// raised it. Check with errors.Is.
var (
	ErrInvalidFormat   = errors.New("invalid command format")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrNotEdited       = errors.New("no field edited")
	ErrDuplicatePrefix = errors.New("duplicate prefix")
	ErrPersonNotFound  = errors.New("person not found")
	ErrDuplicatePerson = errors.New("duplicate person")
)

// Error is a failure of a command. Message is shown to the user as is.
type Error struct {
	Kind    error
	Message string
}

// NewError returns an *Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }
