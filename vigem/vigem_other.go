//go:build !windows

package vigem

import (
	"errors"
	"log/slog"

	"github.com/openpad/proconx/xusb"
)

var errUnsupported = errors.New("vigem: virtual controller bus requires the ViGEmBus driver (Windows only)")

// Bus is unavailable on this platform; New always fails.
type Bus struct{}

func New(logger *slog.Logger) (*Bus, error) {
	return nil, errUnsupported
}

func (b *Bus) Close() error { return errUnsupported }

func (b *Bus) PlugIn(t *xusb.Target) error { return errUnsupported }

func (b *Bus) Unplug(t *xusb.Target) error { return errUnsupported }

func (b *Bus) Submit(t *xusb.Target, r xusb.Report) xusb.Status {
	return xusb.Status(ErrorBusNotFound)
}

func (b *Bus) RegisterFeedback(t *xusb.Target, events chan<- xusb.Feedback) error {
	return errUnsupported
}
