// Package config holds the knobs this AIR actually exposes, using the
// same WithX()-builder style as the rest of the module.
package config

import (
	"fmt"
	"math/big"

	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// Config controls field choice and the low-degree-extension blowup
// factor. The Fiat-Shamir transcript hash is not configurable here. Trace
// length and column counts are derived from the program/step count, not
// configured here.
type Config struct {
	// FieldModulus is the prime the AIR's field arithmetic runs over.
	// Defaults to the Stark-252 prime.
	FieldModulus *big.Int

	// ExtensionFactor is the blowup used when a caller low-degree-extends
	// the trace before committing to it (external to the AIR core, but
	// plumbed through here so one Config can configure the whole pipeline).
	ExtensionFactor int
}

// DefaultConfig returns the Stark-252 field with a blowup factor of 4.
func DefaultConfig() *Config {
	return &Config{
		FieldModulus:    core.Stark252Modulus,
		ExtensionFactor: 4,
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.FieldModulus.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("field modulus must be greater than 2")
	}
	if c.ExtensionFactor != 4 && c.ExtensionFactor != 8 {
		return fmt.Errorf("extension factor must be 4 or 8, got %d", c.ExtensionFactor)
	}
	return nil
}

// WithFieldModulus sets the field modulus.
func (c *Config) WithFieldModulus(modulus *big.Int) *Config {
	c.FieldModulus = new(big.Int).Set(modulus)
	return c
}

// WithExtensionFactor sets the low-degree-extension blowup factor.
func (c *Config) WithExtensionFactor(factor int) *Config {
	c.ExtensionFactor = factor
	return c
}

// Field builds the core.Field this configuration describes.
func (c *Config) Field() (*core.Field, error) {
	return core.NewField(c.FieldModulus)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	return &Config{
		FieldModulus:    new(big.Int).Set(c.FieldModulus),
		ExtensionFactor: c.ExtensionFactor,
	}
}
