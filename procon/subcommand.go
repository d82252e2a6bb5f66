package procon

// Vendor command byte sequences exchanged over the USB HID transport. These
// are opaque protocol constants and must be reproduced bit-exact.
var (
	CmdGetMAC         = []byte{0x80, 0x01}
	CmdHandshake      = []byte{0x80, 0x02}
	CmdSwitchBaudRate = []byte{0x80, 0x03}
	CmdHIDOnlyMode    = []byte{0x80, 0x04}
	CmdDisconnect     = []byte{0x80, 0x05}

	// CmdGetInput requests one input report; the payload is empty.
	CmdGetInput = []byte{0x1f}
)

// Subcommand ids sent inside the subcommand envelope.
const (
	SubcommandSetLED       byte = 0x30
	SubcommandEnableIMU    byte = 0x40
	SubcommandEnableRumble byte = 0x48
)

// Enable is the single-byte payload that switches a feature on.
var Enable = []byte{0x01}

// EncodeSubcommand builds the subcommand envelope: the distinguishing packet
// id, the subcommand byte, then the payload.
func EncodeSubcommand(id, subcommand byte, payload []byte) []byte {
	buf := make([]byte, 0, 2+len(payload))
	buf = append(buf, id, subcommand)
	return append(buf, payload...)
}

// PlayerLights returns the set-player-lights payload byte for an LED index
// reported by the virtual-controller subsystem (one solid light per player).
func PlayerLights(led uint8) byte {
	return 1 << (led & 0x03)
}
