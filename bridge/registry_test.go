package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpad/proconx/xusb"
)

func dummyTarget(serial uint32) *xusb.Target {
	tgt := xusb.NewTarget()
	tgt.SerialNo = serial
	return tgt
}

func TestRegistryHandlesNeverReused(t *testing.T) {
	reg := NewRegistry(testLogger())
	defer reg.Close()

	h1 := reg.register(&Session{target: dummyTarget(1)})
	h2 := reg.register(&Session{target: dummyTarget(2)})
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, reg.Len())

	reg.deregister(h1)
	assert.Equal(t, 1, reg.Len())

	h3 := reg.register(&Session{target: dummyTarget(3)})
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h2, h3)
}

func TestRegistryDeregisterUnknownHandle(t *testing.T) {
	reg := NewRegistry(testLogger())
	defer reg.Close()

	reg.deregister(Handle(42))
	assert.Equal(t, 0, reg.Len())
}
