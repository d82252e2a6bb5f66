package cmd

import (
	"fmt"
	"log/slog"

	"github.com/openpad/proconx/transport"
)

// List prints attached HID devices.
type List struct {
	All bool `help:"List every HID device, not only Switch Pro Controllers"`
}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger) error {
	if !transport.Supported() {
		return fmt.Errorf("HID access is not supported on this platform")
	}

	var infos []transport.Info
	if l.All {
		infos = transport.Enumerate(0, 0)
	} else {
		infos = transport.Enumerate(transport.VendorNintendo, transport.ProductProCon)
	}
	if len(infos) == 0 {
		logger.Info("no matching HID devices found")
		return nil
	}

	for _, info := range infos {
		marker := " "
		if info.IsProCon() {
			marker = "*"
		}
		fmt.Printf("%s %04x:%04x  %-32s %s\n", marker, info.VendorID, info.ProductID, info.Product, info.Path)
	}
	fmt.Println("* = Switch Pro Controller")
	return nil
}
