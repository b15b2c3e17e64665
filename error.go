package dock

import "fmt"

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	// ErrConfigRead means the manifest file could not be read.
	ErrConfigRead ErrorCode = iota + 1
	// ErrConfigParse means the manifest file was read but is not valid TOML for the expected
	// layout.
	ErrConfigParse
	// ErrTokenize means the raw input line could not be split into words, for example because of
	// an unterminated quote.
	ErrTokenize
	// ErrCommandNotFound means the input named no command, or named one that is unknown or
	// disabled. [App.Run] recovers from it by printing help.
	ErrCommandNotFound
	// ErrInputRead means the input stream could not be read.
	ErrInputRead
	// ErrInvalidCommand means a registered command is malformed.
	ErrInvalidCommand
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrConfigRead:
		return "config read"
	case ErrConfigParse:
		return "config parse"
	case ErrTokenize:
		return "tokenize"
	case ErrCommandNotFound:
		return "command not found"
	case ErrInputRead:
		return "input read"
	case ErrInvalidCommand:
		return "invalid command"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code ErrorCode
	err  error
}

// Code reports the kind of failure.
func (e *Error) Code() ErrorCode {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return fmt.Sprintf("%s: %v", convertErrorCode(e.code), e.err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Is reports whether target is an *Error with the same code. It lets callers match a kind with
// errors.Is(err, dock.NewError(dock.ErrTokenize, nil)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.code == t.code
}
