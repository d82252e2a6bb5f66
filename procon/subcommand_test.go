package procon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandBytes(t *testing.T) {
	assert.Equal(t, []byte{0x80, 0x01}, CmdGetMAC)
	assert.Equal(t, []byte{0x80, 0x02}, CmdHandshake)
	assert.Equal(t, []byte{0x80, 0x03}, CmdSwitchBaudRate)
	assert.Equal(t, []byte{0x80, 0x04}, CmdHIDOnlyMode)
	assert.Equal(t, []byte{0x80, 0x05}, CmdDisconnect)
	assert.Equal(t, []byte{0x1f}, CmdGetInput)
}

func TestEncodeSubcommand(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x48, 0x01}, EncodeSubcommand(0x01, SubcommandEnableRumble, Enable))
	assert.Equal(t, []byte{0x02, 0x40, 0x01}, EncodeSubcommand(0x02, SubcommandEnableIMU, Enable))
	assert.Equal(t, []byte{0x03, 0x30, 0x01}, EncodeSubcommand(0x03, SubcommandSetLED, Enable))
	assert.Equal(t, []byte{0x07, 0x30}, EncodeSubcommand(0x07, SubcommandSetLED, nil))
}

func TestPlayerLights(t *testing.T) {
	assert.Equal(t, byte(0x01), PlayerLights(0))
	assert.Equal(t, byte(0x02), PlayerLights(1))
	assert.Equal(t, byte(0x04), PlayerLights(2))
	assert.Equal(t, byte(0x08), PlayerLights(3))
	// LED indexes wrap onto the four lights.
	assert.Equal(t, byte(0x02), PlayerLights(5))
}
