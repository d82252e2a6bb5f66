package procon

import "fmt"

// SentinelNoData is the first byte of an input exchange that carries no new
// controller state. Such a response must be skipped, not decoded.
const SentinelNoData byte = 0x30

// PacketSize is the number of bytes Decode consumes from a raw input report.
const PacketSize = 22

// InputPacket is the fixed-layout USB input report of the Pro Controller.
// It is decoded fresh on every poll and never retained.
type InputPacket struct {
	Header        [8]byte
	Unknown       [5]byte
	RightButtons  byte
	MiddleButtons byte
	LeftButtons   byte
	Sticks        [6]byte
}

// Decode reinterprets a raw input report as an InputPacket. The caller must
// have ruled out the SentinelNoData marker first.
func Decode(raw []byte) (InputPacket, error) {
	var p InputPacket
	if len(raw) < PacketSize {
		return p, fmt.Errorf("procon: input report too short: %d bytes, want at least %d", len(raw), PacketSize)
	}
	copy(p.Header[:], raw[0:8])
	copy(p.Unknown[:], raw[8:13])
	p.RightButtons = raw[13]
	p.MiddleButtons = raw[14]
	p.LeftButtons = raw[15]
	copy(p.Sticks[:], raw[16:22])
	return p, nil
}

// The two 12-bit stick positions per side are packed across three bytes;
// only the top 8 bits of each axis are kept.

// LeftX returns the raw left stick X sample.
func (p *InputPacket) LeftX() uint8 {
	return (p.Sticks[1]&0x0F)<<4 | (p.Sticks[0]&0xF0)>>4
}

// LeftY returns the raw left stick Y sample.
func (p *InputPacket) LeftY() uint8 {
	return p.Sticks[2]
}

// RightX returns the raw right stick X sample.
func (p *InputPacket) RightX() uint8 {
	return (p.Sticks[4]&0x0F)<<4 | (p.Sticks[3]&0xF0)>>4
}

// RightY returns the raw right stick Y sample.
func (p *InputPacket) RightY() uint8 {
	return p.Sticks[5]
}
