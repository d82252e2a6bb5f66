//go:build windows

package vigem

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/openpad/proconx/xusb"
)

var (
	client = windows.NewLazyDLL("ViGEmClient.dll")

	procAlloc                            = client.NewProc("vigem_alloc")
	procFree                             = client.NewProc("vigem_free")
	procConnect                          = client.NewProc("vigem_connect")
	procDisconnect                       = client.NewProc("vigem_disconnect")
	procTargetAdd                        = client.NewProc("vigem_target_add")
	procTargetFree                       = client.NewProc("vigem_target_free")
	procTargetRemove                     = client.NewProc("vigem_target_remove")
	procTargetX360Alloc                  = client.NewProc("vigem_target_x360_alloc")
	procTargetX360RegisterNotification   = client.NewProc("vigem_target_x360_register_notification")
	procTargetX360UnregisterNotification = client.NewProc("vigem_target_x360_unregister_notification")
	procTargetX360Update                 = client.NewProc("vigem_target_x360_update")
)

// boundTarget is the driver-side state for one plugged-in target.
type boundTarget struct {
	raw      uintptr
	callback uintptr
}

// Bus is the ViGEm-backed virtual controller bus.
type Bus struct {
	logger *slog.Logger
	handle uintptr

	mu      sync.Mutex
	targets map[uint32]*boundTarget // keyed by assigned SerialNo
	serial  uint32
}

// New connects to the ViGEmBus driver.
func New(logger *slog.Logger) (*Bus, error) {
	if logger == nil {
		logger = slog.Default()
	}
	handle, _, err := procAlloc.Call()
	if !errors.Is(err, windows.ERROR_SUCCESS) {
		return nil, err
	}
	code, _, err := procConnect.Call(handle)
	if !errors.Is(err, windows.ERROR_SUCCESS) {
		return nil, err
	}
	if verr := newError(code); verr != nil {
		procFree.Call(handle)
		return nil, verr
	}
	return &Bus{
		logger:  logger,
		handle:  handle,
		targets: make(map[uint32]*boundTarget),
	}, nil
}

// Close disconnects from the driver and releases the client handle.
func (b *Bus) Close() error {
	procDisconnect.Call(b.handle)
	_, _, err := procFree.Call(b.handle)
	if errors.Is(err, windows.ERROR_SUCCESS) {
		return nil
	}
	return err
}

// PlugIn allocates an X360 target, adds it to the bus and assigns the
// target its serial.
func (b *Bus) PlugIn(t *xusb.Target) error {
	raw, _, err := procTargetX360Alloc.Call()
	if !errors.Is(err, windows.ERROR_SUCCESS) {
		return err
	}
	code, _, err := procTargetAdd.Call(b.handle, raw)
	if !errors.Is(err, windows.ERROR_SUCCESS) {
		procTargetFree.Call(raw)
		return err
	}
	if verr := newError(code); verr != nil {
		procTargetFree.Call(raw)
		return verr
	}

	b.mu.Lock()
	b.serial++
	t.SerialNo = b.serial
	t.State = xusb.TargetConnected
	b.targets[t.SerialNo] = &boundTarget{raw: raw}
	b.mu.Unlock()
	return nil
}

// Unplug unregisters the target's notification, removes it from the bus and
// frees the driver handle.
func (b *Bus) Unplug(t *xusb.Target) error {
	b.mu.Lock()
	bt := b.targets[t.SerialNo]
	delete(b.targets, t.SerialNo)
	b.mu.Unlock()
	if bt == nil {
		return fmt.Errorf("vigem: target serial %d not plugged in", t.SerialNo)
	}

	if bt.callback != 0 {
		code, _, _ := procTargetX360UnregisterNotification.Call(bt.raw)
		if verr := newError(code); verr != nil {
			b.logger.Warn("notification unregister failed", "error", verr)
		}
	}
	code, _, err := procTargetRemove.Call(b.handle, bt.raw)
	procTargetFree.Call(bt.raw)
	t.State = xusb.TargetDisconnected
	if !errors.Is(err, windows.ERROR_SUCCESS) {
		return err
	}
	if verr := newError(code); verr != nil {
		return verr
	}
	return nil
}

// Submit hands one report to the driver.
func (b *Bus) Submit(t *xusb.Target, r xusb.Report) xusb.Status {
	b.mu.Lock()
	bt := b.targets[t.SerialNo]
	b.mu.Unlock()
	if bt == nil {
		return xusb.Status(ErrorInvalidTarget)
	}

	buf, _ := r.MarshalBinary()
	code, _, _ := procTargetX360Update.Call(b.handle, bt.raw, uintptr(unsafe.Pointer(&buf[0])))
	if uint32(code) == ErrorNone {
		return xusb.StatusOK
	}
	return xusb.Status(code)
}

// RegisterFeedback installs the driver notification for the target and
// bridges it onto the events queue. The callback runs on a driver thread;
// the send never blocks and drops when the queue is full.
func (b *Bus) RegisterFeedback(t *xusb.Target, events chan<- xusb.Feedback) error {
	b.mu.Lock()
	bt := b.targets[t.SerialNo]
	b.mu.Unlock()
	if bt == nil {
		return fmt.Errorf("vigem: target serial %d not plugged in", t.SerialNo)
	}

	handler := func(clientHandle, targetHandle uintptr, largeMotor, smallMotor, ledNumber byte) uintptr {
		ev := xusb.Feedback{
			Target:     *t,
			LargeMotor: largeMotor,
			SmallMotor: smallMotor,
			LEDNumber:  ledNumber,
		}
		select {
		case events <- ev:
		default:
			b.logger.Debug("feedback queue full, event dropped", "serial", t.SerialNo)
		}
		return 0
	}
	bt.callback = windows.NewCallback(handler)

	code, _, err := procTargetX360RegisterNotification.Call(b.handle, bt.raw, bt.callback)
	if !errors.Is(err, windows.ERROR_SUCCESS) {
		return err
	}
	if verr := newError(code); verr != nil {
		return verr
	}
	return nil
}
