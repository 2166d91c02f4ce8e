package protocol

import "errors"

var (
	// ErrEncode means a message could not be represented in the wire format.
	// The send must be skipped.
	ErrEncode = errors.New("encode")
	// ErrDecode means a datagram was not valid structured data.
	ErrDecode = errors.New("decode")
	// ErrField means a required field was missing or had the wrong type.
	ErrField = errors.New("field")
	// ErrUnknownShape means the payload parsed but is not a message this
	// client handles. Callers ignore it.
	ErrUnknownShape = errors.New("unknown message shape")
)
