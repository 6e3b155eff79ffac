package main

import (
	"errors"
	"flag"
	"fmt"
)

// MaxFanout is the most children one /24 can address: uplinks start at .2
// and the last host address of the subnet is .254.
const MaxFanout = 253

// ErrInvalidConfig marks configuration errors from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the generator configuration.
type Config struct {
	SiteName         string
	NumDistributions int
	NumAccess        int

	OutputDir     string
	TemplatesPath string
	InventoryPath string
	XLSXPath      string
}

// DefaultConfig returns the default configuration (small for testing).
func DefaultConfig() Config {
	return Config{
		SiteName:         "site0",
		NumDistributions: 2,
		NumAccess:        2,
	}
}

// ParseFlags parses command line flags and returns a Config.
func ParseFlags() Config {
	cfg := DefaultConfig()

	flag.StringVar(&cfg.SiteName, "site-name", cfg.SiteName, "Site name, used as device name prefix")
	flag.IntVar(&cfg.NumDistributions, "distributions", cfg.NumDistributions, "Number of distribution switches")
	flag.IntVar(&cfg.NumAccess, "accesses", cfg.NumAccess, "Number of access switches per distribution")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory for device outputs (defaults to the site name)")
	flag.StringVar(&cfg.TemplatesPath, "templates", cfg.TemplatesPath, "Path to a YAML file overriding the built-in show command templates")
	flag.StringVar(&cfg.InventoryPath, "inventory", cfg.InventoryPath, "Path to a SQLite inventory database to write (optional)")
	flag.StringVar(&cfg.XLSXPath, "xlsx", cfg.XLSXPath, "Path to an addressing plan workbook to write (optional)")

	flag.Parse()

	return cfg
}

// Validate checks the tier counts against the fixed addressing scheme.
func (c Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("%w: site name must not be empty", ErrInvalidConfig)
	}
	if c.NumDistributions < 0 {
		return fmt.Errorf("%w: negative distribution count %d", ErrInvalidConfig, c.NumDistributions)
	}
	if c.NumAccess < 0 {
		return fmt.Errorf("%w: negative access count %d", ErrInvalidConfig, c.NumAccess)
	}
	if c.NumDistributions > MaxFanout {
		return fmt.Errorf("%w: %d distributions exceed the %d uplink addresses of the WAN /24",
			ErrInvalidConfig, c.NumDistributions, MaxFanout)
	}
	if c.NumAccess > MaxFanout {
		return fmt.Errorf("%w: %d accesses exceed the %d uplink addresses of a distribution /24",
			ErrInvalidConfig, c.NumAccess, MaxFanout)
	}
	return nil
}

// TotalVLANs returns the number of VLANs one build allocates: one for the
// WAN, one per distribution, one per access.
func (c Config) TotalVLANs() int {
	return 1 + c.NumDistributions + c.NumDistributions*c.NumAccess
}
