package procon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpad/proconx/xusb"
)

func TestTranslateReport(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *InputPacket)
		check  func(t *testing.T, rep xusb.Report)
	}{
		{
			name:   "neutral",
			mutate: func(p *InputPacket) {},
			check: func(t *testing.T, rep xusb.Report) {
				assert.Zero(t, rep.Buttons)
				assert.Zero(t, rep.LeftTrigger)
				assert.Zero(t, rep.RightTrigger)
				assert.Equal(t, int16(math.MinInt16), rep.ThumbLX)
				assert.Equal(t, int16(math.MinInt16), rep.ThumbRY)
			},
		},
		{
			name: "face buttons",
			mutate: func(p *InputPacket) {
				p.RightButtons = 0x0F // Y, X, B, A
			},
			check: func(t *testing.T, rep xusb.Report) {
				want := xusb.ButtonA | xusb.ButtonB | xusb.ButtonX | xusb.ButtonY
				assert.Equal(t, want, rep.Buttons)
			},
		},
		{
			name: "dpad",
			mutate: func(p *InputPacket) {
				p.LeftButtons = 0x0F // down, up, right, left
			},
			check: func(t *testing.T, rep xusb.Report) {
				want := xusb.ButtonDPadUp | xusb.ButtonDPadDown | xusb.ButtonDPadLeft | xusb.ButtonDPadRight
				assert.Equal(t, want, rep.Buttons)
			},
		},
		{
			name: "triggers drive axes not bits",
			mutate: func(p *InputPacket) {
				p.LeftButtons = 0x80  // LZ
				p.RightButtons = 0x80 // RZ
			},
			check: func(t *testing.T, rep xusb.Report) {
				assert.Zero(t, rep.Buttons)
				assert.Equal(t, uint8(math.MaxUint8), rep.LeftTrigger)
				assert.Equal(t, uint8(math.MaxUint8), rep.RightTrigger)
			},
		},
		{
			name: "shoulders and sticks",
			mutate: func(p *InputPacket) {
				p.LeftButtons = 0x40   // L
				p.RightButtons = 0x40  // R
				p.MiddleButtons = 0x0C // RStick, LStick
			},
			check: func(t *testing.T, rep xusb.Report) {
				want := xusb.ButtonLShoulder | xusb.ButtonRShoulder | xusb.ButtonLThumb | xusb.ButtonRThumb
				assert.Equal(t, want, rep.Buttons)
			},
		},
		{
			name: "home is best-effort guide, share has no bit",
			mutate: func(p *InputPacket) {
				p.MiddleButtons = 0x30 // Home, Share
			},
			check: func(t *testing.T, rep xusb.Report) {
				assert.Equal(t, xusb.ButtonGuide, rep.Buttons)
			},
		},
		{
			name: "plus and minus",
			mutate: func(p *InputPacket) {
				p.MiddleButtons = 0x03
			},
			check: func(t *testing.T, rep xusb.Report) {
				assert.Equal(t, xusb.ButtonStart|xusb.ButtonBack, rep.Buttons)
			},
		},
		{
			name: "sticks expand",
			mutate: func(p *InputPacket) {
				copy(p.Sticks[:], []byte{0x34, 0x05, 0x78, 0x9A, 0x0B, 0xCD})
			},
			check: func(t *testing.T, rep xusb.Report) {
				assert.Equal(t, Expand(0x53), rep.ThumbLX)
				assert.Equal(t, Expand(0x78), rep.ThumbLY)
				assert.Equal(t, Expand(0xB9), rep.ThumbRX)
				assert.Equal(t, Expand(0xCD), rep.ThumbRY)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p InputPacket
			tt.mutate(&p)
			tt.check(t, TranslateReport(&p))
		})
	}
}
