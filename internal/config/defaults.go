package config

import (
	_ "embed"
	"fmt"
)

//go:embed devices.yaml
var builtinCatalogue []byte

// BuiltinCataloguePath names the embedded catalogue in error messages.
const BuiltinCataloguePath = "<builtin>/devices.yaml"

// DefaultConfig returns the built-in device catalogue. The embedded document is
// covered by tests, so a failure here is a packaging bug.
func DefaultConfig() *Config {
	cfg, err := ParseBytes(BuiltinCataloguePath, builtinCatalogue)
	if err != nil {
		panic(fmt.Sprintf("builtin device catalogue is invalid: %v", err))
	}
	return cfg
}

// Load returns the catalogue at path, or the built-in one when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return ParseConfig(path)
}
