// Package xusb models the emulated Xbox 360 controller: the input report
// submitted to the virtual bus, the target identity the bus hands back, and
// the feedback (rumble/LED) events flowing the other way.
package xusb

import "encoding/binary"

// Button bitmasks of the wButtons field (XInput compatible).
const (
	ButtonDPadUp    uint16 = 0x0001
	ButtonDPadDown  uint16 = 0x0002
	ButtonDPadLeft  uint16 = 0x0004
	ButtonDPadRight uint16 = 0x0008
	ButtonStart     uint16 = 0x0010
	ButtonBack      uint16 = 0x0020
	ButtonLThumb    uint16 = 0x0040 // Left stick button
	ButtonRThumb    uint16 = 0x0080 // Right stick button
	ButtonLShoulder uint16 = 0x0100 // Left bumper (LB)
	ButtonRShoulder uint16 = 0x0200 // Right bumper (RB)
	ButtonGuide     uint16 = 0x0400 // Xbox/Guide button (center logo)
	ButtonA         uint16 = 0x1000
	ButtonB         uint16 = 0x2000
	ButtonX         uint16 = 0x4000
	ButtonY         uint16 = 0x8000
)

// ReportSize is the marshalled size of a Report in bytes.
const ReportSize = 12

// Report is one XUSB input report: a fresh one is built per poll and
// submitted immediately, never accumulated.
type Report struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// MarshalBinary encodes the report into the 12-byte XUSB_REPORT wire layout.
func (r *Report) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	binary.LittleEndian.PutUint16(b[0:2], r.Buttons)
	b[2] = r.LeftTrigger
	b[3] = r.RightTrigger
	binary.LittleEndian.PutUint16(b[4:6], uint16(r.ThumbLX))
	binary.LittleEndian.PutUint16(b[6:8], uint16(r.ThumbLY))
	binary.LittleEndian.PutUint16(b[8:10], uint16(r.ThumbRX))
	binary.LittleEndian.PutUint16(b[10:12], uint16(r.ThumbRY))
	return b, nil
}
