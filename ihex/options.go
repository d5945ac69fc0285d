package ihex

import "github.com/retroenv/retrogolib/log"

// DefaultRowSize is the number of payload bytes per data record written by
// the binary converter.
const DefaultRowSize = 16

// Config holds the parser and converter configuration.
type Config struct {
	// Logger is used for debug logging of conversions (optional)
	Logger *log.Logger

	// RowSize is the maximum payload size of generated data records
	RowSize int

	// StartAddress is written as a start linear address record if set
	StartAddress *uint32
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		RowSize: DefaultRowSize,
	}
}

func newConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option is a functional option for configuring parsing and conversion.
type Option func(*Config)

// WithLogger sets a logger that receives debug messages.
//
// Example:
//
//	img, err := ihex.ParseReader(r, ihex.WithLogger(logger))
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRowSize sets the payload size of data records generated from binary
// data. Values outside 1-255 are ignored.
//
// Example:
//
//	img, err := ihex.FromBinary(data, 0x08000000, ihex.WithRowSize(32))
func WithRowSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= MaxPayloadSize {
			c.RowSize = size
		}
	}
}

// WithStartAddress adds a start linear address record ahead of the end of
// file record of images generated from binary data.
func WithStartAddress(address uint32) Option {
	return func(c *Config) {
		c.StartAddress = &address
	}
}
