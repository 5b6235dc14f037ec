package remote

import "errors"

var (
	// ErrNotFound indicates a remote was not found
	ErrNotFound = errors.New("remote not found")

	// ErrExists indicates a remote with the same name already exists
	ErrExists = errors.New("remote already exists")

	// ErrTimeout indicates the blaster did not acknowledge in time
	ErrTimeout = errors.New("operation timed out")

	// ErrNotConnected indicates no transmitter hardware is attached
	ErrNotConnected = errors.New("transmitter not connected")

	// ErrUnsupported indicates a protocol no encoder is registered for
	ErrUnsupported = errors.New("protocol not supported")

	// ErrValidation indicates a state payload failed validation
	ErrValidation = errors.New("validation error")
)
