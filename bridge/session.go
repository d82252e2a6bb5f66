package bridge

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/openpad/proconx/internal/log"
	"github.com/openpad/proconx/procon"
	"github.com/openpad/proconx/transport"
	"github.com/openpad/proconx/xusb"
)

// DefaultSettleDelay is the pause before and after feedback registration
// that lets the virtual-controller subsystem stabilize after plug-in.
const DefaultSettleDelay = 100 * time.Millisecond

// Feedback is the session's last known rumble/LED state, written by the
// registry's correlator and read by the outgoing-feedback path.
type Feedback struct {
	LargeMotor uint8
	SmallMotor uint8
	LEDNumber  uint8
}

// Options tunes session construction. The zero value picks sane defaults;
// OpenDevice and the delays exist mainly for tests.
type Options struct {
	Logger *slog.Logger
	Raw    log.RawLogger
	// OpenDevice overrides how the physical handle is obtained. Defaults
	// to transport.Open.
	OpenDevice func(transport.Info) (transport.Device, error)
	// SettleDelay overrides DefaultSettleDelay. Negative disables the
	// delays entirely.
	SettleDelay time.Duration
}

// Session is the live binding between one physical controller and one
// virtual controller. It is registered in its registry from successful
// construction until the start of Close.
type Session struct {
	logger *slog.Logger
	raw    log.RawLogger

	reg    *Registry
	bus    xusb.Bus
	target *xusb.Target
	handle Handle

	mu          sync.Mutex // guards dev, closed and lastCommand
	dev         transport.Device
	closed      bool
	lastCommand time.Time

	subID byte

	feedMu   sync.Mutex
	feedback Feedback
	sentLED  uint8
	ledSeen  bool
}

// Open opens the physical controller described by info, drives the
// handshake and mode switch, plugs a virtual controller into bus and
// registers the session with reg. On any failure no partial session is left
// registered or plugged in.
func Open(reg *Registry, bus xusb.Bus, info transport.Info, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	raw := opts.Raw
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	openDevice := opts.OpenDevice
	if openDevice == nil {
		openDevice = transport.Open
	}
	settle := opts.SettleDelay
	if settle == 0 {
		settle = DefaultSettleDelay
	} else if settle < 0 {
		settle = 0
	}

	if !info.IsProCon() {
		return nil, &DeviceError{Path: info.Path, Err: fmt.Errorf(
			"product %04x:%04x is not a Switch Pro Controller", info.VendorID, info.ProductID)}
	}
	dev, err := openDevice(info)
	if err != nil {
		return nil, &DeviceError{Path: info.Path, Err: err}
	}

	s := &Session{
		logger: logger,
		raw:    raw,
		reg:    reg,
		bus:    bus,
		target: xusb.NewTarget(),
		dev:    dev,
	}

	// Only the first handshake gates success; the remaining mode-switch
	// exchanges are tolerated to fail, matching the controller's observed
	// behavior.
	if resp, err := s.exchange(procon.CmdHandshake); err != nil || len(resp) == 0 {
		_ = dev.Close()
		if err == nil {
			err = errors.New("empty handshake response")
		}
		return nil, &HandshakeError{Err: err}
	}
	s.bestEffort(procon.CmdSwitchBaudRate)
	s.bestEffort(procon.CmdHandshake)
	s.bestEffort(procon.CmdHIDOnlyMode)

	s.sendSubcommand(procon.SubcommandEnableRumble, procon.Enable)
	s.sendSubcommand(procon.SubcommandEnableIMU, procon.Enable)
	s.sendSubcommand(procon.SubcommandSetLED, procon.Enable)

	if err := bus.PlugIn(s.target); err != nil {
		_ = dev.Close()
		return nil, &PlugInError{Err: err}
	}
	s.handle = reg.register(s)

	time.Sleep(settle)
	if err := bus.RegisterFeedback(s.target, reg.Events()); err != nil {
		logger.Warn("feedback registration failed", "error", err)
	}
	time.Sleep(settle)

	logger.Info("controller session established",
		"path", info.Path, "serial", s.target.SerialNo)
	return s, nil
}

// exchange sends one raw command and blocks for the response.
func (s *Session) exchange(data []byte) ([]byte, error) {
	s.mu.Lock()
	dev := s.dev
	s.mu.Unlock()
	if dev == nil {
		return nil, errors.New("device closed")
	}
	s.raw.Log(false, data)
	resp, err := dev.Exchange(data)
	if err != nil {
		return nil, err
	}
	s.raw.Log(true, resp)
	return resp, nil
}

func (s *Session) bestEffort(cmd []byte) {
	if _, err := s.exchange(cmd); err != nil {
		s.logger.Debug("mode-switch exchange failed", "command", fmt.Sprintf("% x", cmd), "error", err)
	}
}

// sendSubcommand wraps a subcommand in its envelope with the next packet id
// nibble and sends it. Failures during setup are tolerated.
func (s *Session) sendSubcommand(subcommand byte, payload []byte) {
	s.subID = s.subID%0x0F + 1
	if _, err := s.exchange(procon.EncodeSubcommand(s.subID, subcommand, payload)); err != nil {
		s.logger.Debug("subcommand exchange failed", "subcommand", subcommand, "error", err)
	}
	s.mu.Lock()
	s.lastCommand = time.Now()
	s.mu.Unlock()
}

// Target returns the session's virtual-controller identity.
func (s *Session) Target() *xusb.Target {
	return s.target
}

// LastCommand returns when the session last sent a command to the physical
// controller.
func (s *Session) LastCommand() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCommand
}

// Poll fetches one input report, decodes it and submits the translated
// report to the virtual controller. A closed session is a no-op. A failed
// exchange yields a PollError fatal only to this call; a report carrying
// the no-new-data marker is skipped. Submission failures are logged, never
// escalated.
func (s *Session) Poll() error {
	s.mu.Lock()
	if s.closed || s.dev == nil {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	resp, err := s.exchange(procon.CmdGetInput)
	if err != nil {
		return &PollError{Err: err}
	}
	if len(resp) == 0 {
		return &PollError{Err: errors.New("empty input exchange")}
	}
	if resp[0] == procon.SentinelNoData {
		return nil
	}

	pkt, err := procon.Decode(resp)
	if err != nil {
		return &PollError{Err: err}
	}
	rep := procon.TranslateReport(&pkt)
	if status := s.bus.Submit(s.target, rep); !status.OK() {
		s.logger.Warn("report submission rejected", "status", status)
	}
	return nil
}

// Feedback returns the last rumble/LED state delivered for this session.
func (s *Session) Feedback() Feedback {
	s.feedMu.Lock()
	defer s.feedMu.Unlock()
	return s.feedback
}

// setFeedback is called by the registry's correlator, concurrently with
// polling.
func (s *Session) setFeedback(large, small, led uint8) {
	s.feedMu.Lock()
	s.feedback = Feedback{LargeMotor: large, SmallMotor: small, LEDNumber: led}
	s.feedMu.Unlock()
}

// SyncPlayerLights forwards the LED index assigned by the virtual-controller
// subsystem to the physical controller's player lights. Only changes are
// sent.
func (s *Session) SyncPlayerLights() {
	s.feedMu.Lock()
	led := s.feedback.LEDNumber
	dirty := !s.ledSeen || led != s.sentLED
	s.sentLED = led
	s.ledSeen = true
	s.feedMu.Unlock()
	if !dirty {
		return
	}

	s.mu.Lock()
	closed := s.closed || s.dev == nil
	s.mu.Unlock()
	if closed {
		return
	}
	s.sendSubcommand(procon.SubcommandSetLED, []byte{procon.PlayerLights(led)})
}

// Close tears the session down: unplug the virtual controller if it is
// still connected, send the disconnect command best-effort, release the
// physical handle and deregister. Closing twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	dev := s.dev
	s.dev = nil
	s.mu.Unlock()

	if s.target.Connected() {
		if err := s.bus.Unplug(s.target); err != nil {
			s.logger.Warn("virtual controller unplug failed", "error", err)
		}
	}
	if dev != nil {
		// Result ignored: teardown always completes.
		s.raw.Log(false, procon.CmdDisconnect)
		_, _ = dev.Exchange(procon.CmdDisconnect)
		_ = dev.Close()
	}
	s.reg.deregister(s.handle)
	s.logger.Info("controller session closed", "serial", s.target.SerialNo)
	return nil
}
