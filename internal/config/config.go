// Package config declares the CLI surface parsed by kong.
package config

import "github.com/openpad/proconx/internal/cmd"

// Log holds the logging flags shared by every command.
type Log struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"PROCONX_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"PROCONX_LOG_FILE"`
	RawFile string `help:"Write hex dumps of raw HID exchanges to this file" env:"PROCONX_LOG_RAW_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	Log    Log    `embed:"" prefix:"log."`
	Config string `help:"Path to a config file" env:"PROCONX_CONFIG"`

	Bridge cmd.Bridge        `cmd:"" default:"withargs" help:"Bridge attached Pro Controllers to virtual Xbox 360 pads"`
	List   cmd.List          `cmd:"" help:"List attached HID devices"`
	Cfg    cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
