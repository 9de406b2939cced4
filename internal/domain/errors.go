package domain

// ErrorKind classifies engine failures so callers can map them to responses.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInvalidState
	KindAlreadyClosed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidState:
		return "invalid state"
	case KindAlreadyClosed:
		return "already closed"
	}
	return "unknown"
}

// Error is a kind-tagged error carrying an operation-specific message.
// Match with errors.Is against the kind sentinels below.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is matches on kind. A sentinel with an empty message matches every error of
// its kind; a sentinel with a message requires an exact message match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// Kind sentinels for errors.Is.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrInvalidState  = &Error{Kind: KindInvalidState}
	ErrAlreadyClosed = &Error{Kind: KindAlreadyClosed}
)

// ErrDuplicateEmail is returned when creating a user with an email already in use.
var ErrDuplicateEmail = &Error{Kind: KindInvalidState, Message: "email already in use"}

// NotFound returns a KindNotFound error with the given message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// InvalidState returns a KindInvalidState error with the given message.
func InvalidState(msg string) *Error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

// AlreadyClosed returns a KindAlreadyClosed error with the given message.
func AlreadyClosed(msg string) *Error {
	return &Error{Kind: KindAlreadyClosed, Message: msg}
}
