package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openpad/proconx/bridge"
	"github.com/openpad/proconx/internal/log"
	"github.com/openpad/proconx/transport"
	"github.com/openpad/proconx/vigem"
)

// Bridge runs the controller bridge: one session per attached Pro
// Controller, polled until interrupted.
type Bridge struct {
	PollInterval time.Duration `help:"Interval between input polls" default:"15ms" env:"PROCONX_POLL_INTERVAL"`
	SettleDelay  time.Duration `help:"Delay before and after feedback registration" default:"100ms" env:"PROCONX_SETTLE_DELAY"`
	Device       string        `help:"Bridge only the HID device at this path"`
}

// Run is called by Kong when the bridge command is executed.
func (b *Bridge) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return b.runBridge(ctx, logger, rawLogger)
}

func (b *Bridge) runBridge(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	if !transport.Supported() {
		return errors.New("HID access is not supported on this platform")
	}

	bus, err := vigem.New(logger)
	if err != nil {
		return err
	}
	defer bus.Close()

	reg := bridge.NewRegistry(logger)
	defer reg.Close()

	infos := transport.Enumerate(transport.VendorNintendo, transport.ProductProCon)
	var sessions []*bridge.Session
	for _, info := range infos {
		if b.Device != "" && info.Path != b.Device {
			continue
		}
		s, err := bridge.Open(reg, bus, info, bridge.Options{
			Logger:      logger,
			Raw:         rawLogger,
			SettleDelay: b.SettleDelay,
		})
		if err != nil {
			logger.Error("failed to open controller", "path", info.Path, "error", err)
			continue
		}
		sessions = append(sessions, s)
	}
	if len(sessions) == 0 {
		return errors.New("no Switch Pro Controller could be opened")
	}
	defer func() {
		for _, s := range sessions {
			_ = s.Close()
		}
	}()

	logger.Info("bridging controllers", "count", len(sessions), "interval", b.PollInterval)

	lastRumble := make([]bridge.Feedback, len(sessions))
	ticker := time.NewTicker(b.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-ticker.C:
			for i, s := range sessions {
				if err := s.Poll(); err != nil {
					// Fatal only to this poll; keep the session and retry
					// on the next tick.
					logger.Warn("poll failed", "serial", s.Target().SerialNo, "error", err)
					continue
				}
				s.SyncPlayerLights()
				if fb := s.Feedback(); fb != lastRumble[i] {
					logger.Debug("feedback changed",
						"serial", s.Target().SerialNo,
						"large", fb.LargeMotor, "small", fb.SmallMotor, "led", fb.LEDNumber)
					lastRumble[i] = fb
				}
			}
		}
	}
}
