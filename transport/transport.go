// Package transport is the byte-transport boundary to the physical
// controller: enumerating HID devices, opening them and exchanging raw
// reports. It wraps the hidapi binding so the rest of the bridge only sees
// the Device interface.
package transport

import (
	"fmt"

	hidapi "github.com/karalabe/hid"
)

// USB identity of the Switch Pro Controller.
const (
	VendorNintendo uint16 = 0x057e
	ProductProCon  uint16 = 0x2009
)

// exchangeBufSize is the read buffer for one HID input report.
const exchangeBufSize = 0x40

// Info describes an enumerated HID device.
type Info struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Serial    string
	Product   string
}

// IsProCon reports whether the device identifies as a Switch Pro Controller.
func (i Info) IsProCon() bool {
	return i.VendorID == VendorNintendo && i.ProductID == ProductProCon
}

// Device is an open, exclusively-owned HID handle.
type Device interface {
	// Exchange writes one output report and blocks for the response.
	Exchange(data []byte) ([]byte, error)
	Close() error
}

// Supported reports whether HID access is available on this platform.
func Supported() bool {
	return hidapi.Supported()
}

// Enumerate lists attached HID devices matching the vendor and product ids;
// zero matches everything.
func Enumerate(vendorID, productID uint16) []Info {
	raw := hidapi.Enumerate(vendorID, productID)
	infos := make([]Info, 0, len(raw))
	for _, d := range raw {
		infos = append(infos, Info{
			Path:      d.Path,
			VendorID:  d.VendorID,
			ProductID: d.ProductID,
			Serial:    d.Serial,
			Product:   d.Product,
		})
	}
	return infos
}

// Open opens the device at info's path for exclusive report exchange.
func Open(info Info) (Device, error) {
	raw := hidapi.Enumerate(info.VendorID, info.ProductID)
	for _, d := range raw {
		if d.Path != info.Path {
			continue
		}
		dev, err := d.Open()
		if err != nil {
			return nil, err
		}
		return &hidDevice{dev: dev}, nil
	}
	return nil, fmt.Errorf("transport: device %s no longer present", info.Path)
}

type hidDevice struct {
	dev *hidapi.Device
}

func (d *hidDevice) Exchange(data []byte) ([]byte, error) {
	if _, err := d.dev.Write(data); err != nil {
		return nil, err
	}
	buf := make([]byte, exchangeBufSize)
	n, err := d.dev.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (d *hidDevice) Close() error {
	return d.dev.Close()
}
