package procon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeButtons(t *testing.T) {
	sources := map[string]ButtonSource{
		"left":   SourceLeft,
		"middle": SourceMiddle,
		"right":  SourceRight,
	}
	samples := []byte{0x00, 0xFF, 0xA5, 0x5A, 0x01, 0x80}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			table := bitmapFor(src)
			for _, c := range samples {
				out := DecodeButtons(c, src, nil)

				mapped := 0
				for _, b := range table {
					if b != ButtonNone {
						mapped++
					}
				}
				require.Len(t, out, mapped, "byte %#02x", c)

				idx := 0
				for i := 0; i < 8; i++ {
					if table[i] == ButtonNone {
						continue
					}
					assert.Equal(t, table[i], out[idx].Button)
					assert.Equal(t, c&(1<<i) != 0, out[idx].Pressed, "byte %#02x bit %d", c, i)
					idx++
				}
			}
		})
	}
}

func TestDecodeButtonsAppends(t *testing.T) {
	out := DecodeButtons(0xFF, SourceLeft, nil)
	out = DecodeButtons(0x00, SourceRight, out)
	assert.Len(t, out, 12)
}

func TestBitmapForUnknownSource(t *testing.T) {
	assert.Panics(t, func() { bitmapFor(ButtonSource(42)) })
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "A", ButtonA.String())
	assert.Equal(t, "Left Stick", ButtonLStick.String())
	assert.Equal(t, "DPad Up", ButtonDPadUp.String())
	assert.Equal(t, "None", ButtonNone.String())
	assert.Equal(t, "Unknown", ButtonUnknown.String())
	assert.Equal(t, "Unknown", Button(200).String())
}
