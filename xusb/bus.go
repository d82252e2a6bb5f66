package xusb

import "fmt"

// Status is the driver-level result of a report submission. A non-OK status
// is reported by the caller but never escalated: a failed submission must
// not interrupt input polling.
type Status uint32

// StatusOK means the submission was accepted by the driver.
const StatusOK Status = 0

// OK reports whether the submission succeeded.
func (s Status) OK() bool {
	return s == StatusOK
}

func (s Status) String() string {
	if s.OK() {
		return "ok"
	}
	return fmt.Sprintf("0x%08X", uint32(s))
}

// Feedback is one rumble/LED event emitted by the virtual-controller
// subsystem. Target carries the identity of the controller the event is
// for, as the driver saw it when the event fired.
type Feedback struct {
	Target     Target
	LargeMotor uint8
	SmallMotor uint8
	LEDNumber  uint8
}

// Bus is the virtual-controller subsystem boundary. Implementations plug
// emulated controllers into the host and deliver feedback events onto the
// channel handed to RegisterFeedback; they never call back into application
// code on their own thread.
type Bus interface {
	// PlugIn connects the target to the host. On success the bus assigns
	// the target's SerialNo and moves it to TargetConnected.
	PlugIn(t *Target) error
	// Unplug disconnects the target and moves it to TargetDisconnected.
	Unplug(t *Target) error
	// Submit hands one input report to the driver.
	Submit(t *Target, r Report) Status
	// RegisterFeedback subscribes the target's rumble/LED events. Sends
	// must not block: implementations drop events when the channel is full.
	RegisterFeedback(t *Target, events chan<- Feedback) error
}
