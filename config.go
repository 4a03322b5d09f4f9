package wire

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the per-protocol wire conventions a deployment may need to tune
// without recompiling: byte order, buffer sizing, fixed-string layout and the
// integrity algorithm appended to frames.
type Config struct {
	ByteOrder       string `toml:"byte_order"`
	InitialCapacity int    `toml:"initial_capacity"`
	FixedPad        string `toml:"fixed_pad"`
	FixedTrim       string `toml:"fixed_trim"`
	FixedSide       string `toml:"fixed_side"`
	Checksum        string `toml:"checksum"`
}

// DefaultConfig is little-endian, 256-byte buffers, space padding on the right
// and no checksum.
func DefaultConfig() Config {
	return Config{
		ByteOrder:       "little",
		InitialCapacity: DefaultCapacity,
		FixedPad:        " ",
		FixedTrim:       " ",
		FixedSide:       "right",
	}
}

// LoadConfig reads a TOML file. Keys absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load wire config (%s): %w", path, err)
	}
	return overlay(raw, meta)
}

// ParseConfig is LoadConfig for an in-memory document.
func ParseConfig(doc string) (Config, error) {
	var raw Config
	meta, err := toml.Decode(doc, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse wire config: %w", err)
	}
	return overlay(raw, meta)
}

func overlay(raw Config, meta toml.MetaData) (Config, error) {
	cfg := DefaultConfig()
	if meta.IsDefined("byte_order") {
		cfg.ByteOrder = strings.ToLower(strings.TrimSpace(raw.ByteOrder))
	}
	if meta.IsDefined("initial_capacity") {
		cfg.InitialCapacity = raw.InitialCapacity
	}
	if meta.IsDefined("fixed_pad") {
		cfg.FixedPad = raw.FixedPad
		if !meta.IsDefined("fixed_trim") {
			cfg.FixedTrim = raw.FixedPad
		}
	}
	if meta.IsDefined("fixed_trim") {
		cfg.FixedTrim = raw.FixedTrim
	}
	if meta.IsDefined("fixed_side") {
		cfg.FixedSide = strings.ToLower(strings.TrimSpace(raw.FixedSide))
	}
	if meta.IsDefined("checksum") {
		cfg.Checksum = strings.TrimSpace(raw.Checksum)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first value that cannot be interpreted.
func (c Config) Validate() error {
	switch c.ByteOrder {
	case "little", "le", "big", "be":
	default:
		return fmt.Errorf("%w: byte_order %q", ErrInvalidConfig, c.ByteOrder)
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial_capacity %d", ErrInvalidConfig, c.InitialCapacity)
	}
	if _, err := padByte("fixed_pad", c.FixedPad); err != nil {
		return err
	}
	if _, err := padByte("fixed_trim", c.FixedTrim); err != nil {
		return err
	}
	switch c.FixedSide {
	case "left", "right":
	default:
		return fmt.Errorf("%w: fixed_side %q", ErrInvalidConfig, c.FixedSide)
	}
	return nil
}

// padByte accepts a one-byte string; "" means NUL.
func padByte(key, s string) (byte, error) {
	switch len(s) {
	case 0:
		return 0, nil
	case 1:
		return s[0], nil
	}
	return 0, fmt.Errorf("%w: %s must be a single byte, got %q", ErrInvalidConfig, key, s)
}

// Order returns the configured byte order.
func (c Config) Order() binary.ByteOrder {
	switch c.ByteOrder {
	case "big", "be":
		return BE
	}
	return LE
}

// NewByteBuf returns an empty buffer with the configured order and capacity.
func (c Config) NewByteBuf() *ByteBuf {
	return NewByteBuf(c.InitialCapacity).WithByteOrder(c.Order())
}

// FixedOptions returns the configured fixed-string layout.
func (c Config) FixedOptions() FixedOptions {
	o := DefaultFixedOptions()
	if p, err := padByte("fixed_pad", c.FixedPad); err == nil {
		o.Pad = p
	}
	if t, err := padByte("fixed_trim", c.FixedTrim); err == nil {
		o.Trim = t
	}
	if c.FixedSide == "left" {
		o.Side = PadLeftSide
	}
	return o
}
