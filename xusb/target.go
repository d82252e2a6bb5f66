package xusb

// TargetState tracks where a virtual controller is in its bus lifecycle.
type TargetState uint8

const (
	TargetNew TargetState = iota
	TargetInitialized
	TargetConnected
	TargetDisconnected
)

func (s TargetState) String() string {
	switch s {
	case TargetNew:
		return "new"
	case TargetInitialized:
		return "initialized"
	case TargetConnected:
		return "connected"
	case TargetDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Default identity of the emulated wired Xbox 360 pad.
const (
	DefaultVendorID  uint16 = 0x045e
	DefaultProductID uint16 = 0x028e
)

// Target is the identity of one virtual controller on the bus. SerialNo is
// assigned by the bus at plug-in and, together with the other fields,
// uniquely identifies a live target.
type Target struct {
	VendorID  uint16
	ProductID uint16
	SerialNo  uint32
	State     TargetState
}

// NewTarget returns an initialized target with the default wired Xbox 360
// identity, ready to be plugged into a Bus.
func NewTarget() *Target {
	return &Target{
		VendorID:  DefaultVendorID,
		ProductID: DefaultProductID,
		State:     TargetInitialized,
	}
}

// Connected reports whether the target is currently plugged into the bus.
func (t *Target) Connected() bool {
	return t.State == TargetConnected
}

// IdentityEquals reports whether two targets denote the same virtual
// controller. All four fields must match; a partial match is no match.
func (t *Target) IdentityEquals(other Target) bool {
	return t.ProductID == other.ProductID &&
		t.SerialNo == other.SerialNo &&
		t.State == other.State &&
		t.VendorID == other.VendorID
}
