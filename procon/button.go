// Package procon implements the Switch Pro Controller side of the bridge:
// the vendor command byte sequences, the input report layout, the button
// bitmap tables and the stick sample normalization.
//
// Protocol reference:
// https://github.com/dekuNukem/Nintendo_Switch_Reverse_Engineering
package procon

import "fmt"

// Button identifies one physical control on the Pro Controller.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonLStick
	ButtonRStick
	ButtonL
	ButtonLZ
	ButtonR
	ButtonRZ
	ButtonHome
	ButtonShare
	ButtonPlus
	ButtonMinus
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonUnknown

	buttonCount = int(ButtonUnknown) + 1
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonLStick:
		return "Left Stick"
	case ButtonRStick:
		return "Right Stick"
	case ButtonL:
		return "L"
	case ButtonLZ:
		return "LZ"
	case ButtonR:
		return "R"
	case ButtonRZ:
		return "RZ"
	case ButtonHome:
		return "Home"
	case ButtonShare:
		return "Share"
	case ButtonPlus:
		return "Plus"
	case ButtonMinus:
		return "Minus"
	case ButtonDPadUp:
		return "DPad Up"
	case ButtonDPadDown:
		return "DPad Down"
	case ButtonDPadLeft:
		return "DPad Left"
	case ButtonDPadRight:
		return "DPad Right"
	case ButtonNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ButtonSource names one of the three button bitmap bytes of an input
// report.
type ButtonSource int

const (
	SourceLeft ButtonSource = iota
	SourceMiddle
	SourceRight
)

// Bit-position to button tables for the three bitmap bytes. Bits marked
// ButtonNone (the SL/SR rail buttons, grip sensing) are skipped during
// decoding.
var (
	leftBitmap = [8]Button{
		ButtonDPadDown, ButtonDPadUp, ButtonDPadRight, ButtonDPadLeft,
		ButtonNone, ButtonNone, ButtonL, ButtonLZ,
	}
	middleBitmap = [8]Button{
		ButtonMinus, ButtonPlus, ButtonRStick, ButtonLStick,
		ButtonHome, ButtonShare, ButtonNone, ButtonNone,
	}
	rightBitmap = [8]Button{
		ButtonY, ButtonX, ButtonB, ButtonA,
		ButtonNone, ButtonNone, ButtonR, ButtonRZ,
	}
)

func bitmapFor(src ButtonSource) *[8]Button {
	switch src {
	case SourceLeft:
		return &leftBitmap
	case SourceMiddle:
		return &middleBitmap
	case SourceRight:
		return &rightBitmap
	default:
		panic(fmt.Sprintf("procon: unknown button source %d", src))
	}
}

// ButtonState is one decoded (button, pressed) pair.
type ButtonState struct {
	Button  Button
	Pressed bool
}

// DecodeButtons appends the (button, pressed) pairs encoded in bitmap byte c
// to out and returns the extended slice. Exactly one pair is produced per
// non-None slot of the source's table, pressed iff the slot's bit is set.
func DecodeButtons(c byte, src ButtonSource, out []ButtonState) []ButtonState {
	table := bitmapFor(src)
	for i := 0; i < 8; i++ {
		if table[i] == ButtonNone {
			continue
		}
		out = append(out, ButtonState{
			Button:  table[i],
			Pressed: c&(1<<i) != 0,
		})
	}
	return out
}
