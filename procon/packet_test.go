package procon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawReport() []byte {
	raw := make([]byte, PacketSize)
	raw[0] = 0x81
	return raw
}

func TestDecodeTooShort(t *testing.T) {
	_, err := Decode(make([]byte, PacketSize-1))
	require.Error(t, err)
}

func TestDecodeFieldPlacement(t *testing.T) {
	raw := rawReport()
	raw[13] = 0xAA // right buttons
	raw[14] = 0xBB // middle buttons
	raw[15] = 0xCC // left buttons

	p, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), p.RightButtons)
	assert.Equal(t, byte(0xBB), p.MiddleButtons)
	assert.Equal(t, byte(0xCC), p.LeftButtons)
}

func TestDecodeStickUnpacking(t *testing.T) {
	raw := rawReport()
	copy(raw[16:22], []byte{0x34, 0x05, 0x78, 0x9A, 0x0B, 0xCD})

	p, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x53), p.LeftX())
	assert.Equal(t, uint8(0x78), p.LeftY())
	assert.Equal(t, uint8(0xB9), p.RightX())
	assert.Equal(t, uint8(0xCD), p.RightY())
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	raw := append(rawReport(), 0xDE, 0xAD)
	raw[21] = 0x42

	p, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), p.RightY())
}
