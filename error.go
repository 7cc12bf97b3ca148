package subcmd

import "strings"

// ErrorCode identifies why [Handler.Run] rejected an invocation.
type ErrorCode int

const (
	// ErrBadUsage means the invocation itself was malformed.
	ErrBadUsage ErrorCode = iota + 1
	// ErrUnknownCommand means the requested command is not registered.
	ErrUnknownCommand
)

func (c ErrorCode) String() string {
	switch c {
	case ErrBadUsage:
		return "bad usage"
	case ErrUnknownCommand:
		return "unknown command"
	default:
		return "unknown error"
	}
}

// Error is returned by [Handler.Run] for the rejecting [Result] variants. It
// carries the code and the message that was rendered, so the embedding
// program can pick its own exit code.
type Error struct {
	code ErrorCode
	msg  *Message
}

// NewError creates a new error with the given error code and message.
func NewError(code ErrorCode, msg *Message) *Error {
	return &Error{code: code, msg: msg}
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Message returns the message that accompanied the rejection.
func (e *Error) Message() *Message {
	return e.msg
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.msg == nil {
		return e.code.String()
	}
	return strings.TrimRight(e.msg.Get(), "\n")
}
