package config

import (
	"math/big"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FieldModulus.Cmp(big.NewInt(0)) <= 0 {
		t.Error("FieldModulus should be positive")
	}
	if cfg.ExtensionFactor != 4 {
		t.Errorf("ExtensionFactor = %d, want 4", cfg.ExtensionFactor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{name: "valid default config", config: DefaultConfig(), expectErr: false},
		{name: "valid extension factor 8", config: DefaultConfig().WithExtensionFactor(8), expectErr: false},
		{
			name:      "modulus too small",
			config:    DefaultConfig().WithFieldModulus(big.NewInt(2)),
			expectErr: true,
		},
		{
			name:      "invalid extension factor",
			config:    DefaultConfig().WithExtensionFactor(3),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWithFieldModulusDoesNotAliasInput(t *testing.T) {
	modulus := big.NewInt(101)
	cfg := DefaultConfig().WithFieldModulus(modulus)
	modulus.SetInt64(999)
	if cfg.FieldModulus.Cmp(big.NewInt(101)) != 0 {
		t.Error("WithFieldModulus should copy the modulus, not alias it")
	}
}

func TestConfigFieldBuildsUsableField(t *testing.T) {
	cfg := DefaultConfig()
	field, err := cfg.Field()
	if err != nil {
		t.Fatalf("Field() failed: %v", err)
	}
	a := field.NewElementFromInt64(3)
	b := field.NewElementFromInt64(4)
	if !a.Add(b).Equal(field.NewElementFromInt64(7)) {
		t.Error("field built from config does not behave like a field")
	}
}

func TestConfigCloneIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.FieldModulus.SetInt64(5)
	clone.ExtensionFactor = 8

	if cfg.FieldModulus.Cmp(clone.FieldModulus) == 0 {
		t.Error("mutating the clone's modulus should not affect the original")
	}
	if cfg.ExtensionFactor == clone.ExtensionFactor {
		t.Error("mutating the clone's extension factor should not affect the original")
	}
}
