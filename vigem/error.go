// Package vigem implements the xusb.Bus boundary on top of the ViGEmBus
// driver via ViGEmClient.dll. Feedback notifications from the driver are
// converted into events on the registry's queue instead of calling back
// into application code.
package vigem

// ViGEm API status codes.
const (
	ErrorNone                       uint32 = 0x20000000
	ErrorBusNotFound                uint32 = 0xE0000001
	ErrorNoFreeSlot                 uint32 = 0xE0000002
	ErrorInvalidTarget              uint32 = 0xE0000003
	ErrorRemovalFailed              uint32 = 0xE0000004
	ErrorAlreadyConnected           uint32 = 0xE0000005
	ErrorTargetUninitialized        uint32 = 0xE0000006
	ErrorTargetNotPluggedIn         uint32 = 0xE0000007
	ErrorBusVersionMismatch         uint32 = 0xE0000008
	ErrorBusAccessFailed            uint32 = 0xE0000009
	ErrorCallbackAlreadyRegistered  uint32 = 0xE0000010
	ErrorCallbackNotFound           uint32 = 0xE0000011
	ErrorBusAlreadyConnected        uint32 = 0xE0000012
	ErrorBusInvalidHandle           uint32 = 0xE0000013
	ErrorXusbUserIndexOutOfRange    uint32 = 0xE0000014
)

// Error is a non-success status returned by a ViGEm API call.
type Error struct {
	code uint32
}

// newError wraps a raw API return value, or returns nil on success.
func newError(raw uintptr) *Error {
	code := uint32(raw)
	if code == ErrorNone {
		return nil
	}
	return &Error{code: code}
}

// Code returns the raw ViGEm status code.
func (e *Error) Code() uint32 { return e.code }

func (e *Error) Error() string {
	switch e.code {
	case ErrorBusNotFound:
		return "vigem: bus not found"
	case ErrorNoFreeSlot:
		return "vigem: no free slot"
	case ErrorInvalidTarget:
		return "vigem: invalid target"
	case ErrorRemovalFailed:
		return "vigem: removal failed"
	case ErrorAlreadyConnected:
		return "vigem: already connected"
	case ErrorTargetUninitialized:
		return "vigem: target uninitialized"
	case ErrorTargetNotPluggedIn:
		return "vigem: target not plugged in"
	case ErrorBusVersionMismatch:
		return "vigem: bus version mismatch"
	case ErrorBusAccessFailed:
		return "vigem: bus access failed"
	case ErrorCallbackAlreadyRegistered:
		return "vigem: callback already registered"
	case ErrorCallbackNotFound:
		return "vigem: callback not found"
	case ErrorBusAlreadyConnected:
		return "vigem: bus already connected"
	case ErrorBusInvalidHandle:
		return "vigem: bus invalid handle"
	case ErrorXusbUserIndexOutOfRange:
		return "vigem: xusb user index out of range"
	default:
		return "vigem: unrecognized status code"
	}
}
