package procon

import (
	"math"

	"github.com/openpad/proconx/xusb"
)

// reportBits maps every button to its bit in the outgoing wButtons field.
// The table is total over the Button enumeration; buttons without a bit
// (None, Share, Unknown and the two triggers) stay zero. Indexing it with a
// value outside the enumeration is a programming defect and panics.
var reportBits = [buttonCount]uint16{
	ButtonDPadUp:    xusb.ButtonDPadUp,
	ButtonDPadDown:  xusb.ButtonDPadDown,
	ButtonDPadLeft:  xusb.ButtonDPadLeft,
	ButtonDPadRight: xusb.ButtonDPadRight,
	ButtonPlus:      xusb.ButtonStart,
	ButtonMinus:     xusb.ButtonBack,
	ButtonLStick:    xusb.ButtonLThumb,
	ButtonRStick:    xusb.ButtonRThumb,
	ButtonL:         xusb.ButtonLShoulder,
	ButtonR:         xusb.ButtonRShoulder,
	ButtonHome:      xusb.ButtonGuide, // undocumented upstream, best-effort
	ButtonA:         xusb.ButtonA,
	ButtonB:         xusb.ButtonB,
	ButtonX:         xusb.ButtonX,
	ButtonY:         xusb.ButtonY,
}

// applyButton folds one pressed button into the report. LZ and RZ drive the
// analog trigger axes instead of a button bit.
func applyButton(b Button, rep *xusb.Report) {
	switch b {
	case ButtonLZ:
		rep.LeftTrigger = math.MaxUint8
	case ButtonRZ:
		rep.RightTrigger = math.MaxUint8
	default:
		rep.Buttons |= reportBits[b]
	}
}

// TranslateReport converts one decoded input packet into the XUSB report
// submitted to the virtual controller.
func TranslateReport(p *InputPacket) xusb.Report {
	var rep xusb.Report

	rep.ThumbLX = Expand(p.LeftX())
	rep.ThumbLY = Expand(p.LeftY())
	rep.ThumbRX = Expand(p.RightX())
	rep.ThumbRY = Expand(p.RightY())

	buttons := make([]ButtonState, 0, 24)
	buttons = DecodeButtons(p.LeftButtons, SourceLeft, buttons)
	buttons = DecodeButtons(p.RightButtons, SourceRight, buttons)
	buttons = DecodeButtons(p.MiddleButtons, SourceMiddle, buttons)

	for _, bs := range buttons {
		if bs.Pressed {
			applyButton(bs.Button, &rep)
		}
	}
	return rep
}
