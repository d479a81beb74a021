package gopro

import "errors"

var (
	// ErrInvalidAddress is returned when the configured camera base
	// address does not parse as a URL.
	ErrInvalidAddress = errors.New("invalid camera address")

	// ErrAuthenticationFailed is returned when the token fetch from the
	// bacpac fails. The underlying transport error is wrapped.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedMediaTree is returned when the media listing payload
	// cannot be decoded into a directory/file tree. The whole listing is
	// rejected rather than returning a partial one.
	ErrMalformedMediaTree = errors.New("malformed media tree")

	// ErrTransport classifies any other network failure talking to the
	// camera.
	ErrTransport = errors.New("transport error")
)
