package xusb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMarshalBinary(t *testing.T) {
	r := Report{
		Buttons:      ButtonA | ButtonDPadUp,
		LeftTrigger:  0x7F,
		RightTrigger: 0xFF,
		ThumbLX:      0x0102,
		ThumbLY:      -2,
		ThumbRX:      0x7FFF,
		ThumbRY:      -0x8000,
	}
	b, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x01, 0x10, // buttons, little endian
		0x7F, 0xFF, // triggers
		0x02, 0x01, // LX
		0xFE, 0xFF, // LY
		0xFF, 0x7F, // RX
		0x00, 0x80, // RY
	}, b)
}

func TestTargetIdentityEquals(t *testing.T) {
	base := Target{VendorID: DefaultVendorID, ProductID: DefaultProductID, SerialNo: 7, State: TargetConnected}

	same := base
	assert.True(t, base.IdentityEquals(same))

	tests := []struct {
		name   string
		mutate func(*Target)
	}{
		{"serial", func(o *Target) { o.SerialNo = 8 }},
		{"state", func(o *Target) { o.State = TargetDisconnected }},
		{"vendor", func(o *Target) { o.VendorID = 0x1234 }},
		{"product", func(o *Target) { o.ProductID = 0x1234 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.mutate(&other)
			assert.False(t, base.IdentityEquals(other), "partial match must not match")
		})
	}
}

func TestTargetLifecycle(t *testing.T) {
	tgt := NewTarget()
	assert.Equal(t, TargetInitialized, tgt.State)
	assert.False(t, tgt.Connected())
	tgt.State = TargetConnected
	assert.True(t, tgt.Connected())
	assert.Equal(t, "connected", tgt.State.String())
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusOK.OK())
	assert.Equal(t, "ok", StatusOK.String())
	s := Status(0xE0000003)
	assert.False(t, s.OK())
	assert.Equal(t, "0xE0000003", s.String())
}
