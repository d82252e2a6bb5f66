package bridge

import "fmt"

// DeviceError means the physical controller could not be opened or is not
// the expected product. Fatal to session establishment.
type DeviceError struct {
	Path string
	Err  error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("unable to open controller device %s: %v", e.Path, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// HandshakeError means the initial handshake exchange failed. Fatal to
// session establishment.
type HandshakeError struct {
	Err error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("controller handshake failed: %v", e.Err)
}

func (e *HandshakeError) Unwrap() error { return e.Err }

// PlugInError means the virtual controller could not be plugged into the
// bus. Fatal to session establishment; the physical handle is released.
type PlugInError struct {
	Err error
}

func (e *PlugInError) Error() string {
	return fmt.Sprintf("unable to plug in virtual controller: %v", e.Err)
}

func (e *PlugInError) Unwrap() error { return e.Err }

// PollError means one input exchange failed. Fatal only to that poll; the
// session stays active and the caller decides whether to retry or close.
type PollError struct {
	Err error
}

func (e *PollError) Error() string {
	return fmt.Sprintf("input poll failed: %v", e.Err)
}

func (e *PollError) Unwrap() error { return e.Err }
