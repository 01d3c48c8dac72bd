// Package profile loads the explainer configuration.
package profile

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Profile represents the configuration of the explainer tools.
type Profile struct {
	Mode           string `yaml:"mode"`            // hex or asm
	Format         string `yaml:"format"`          // text or json
	RegisterPrefix string `yaml:"register_prefix"` // prepended to register names in reports
	Listen         string `yaml:"listen"`          // serve command address
	LogLevel       string `yaml:"log_level"`
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Mode:           "hex",
		Format:         "text",
		RegisterPrefix: "$",
		Listen:         ":1357",
		LogLevel:       "info",
	}
}

// LoadProfile loads a profile from a YAML file. Keys missing from the file
// keep their default values. An empty filename yields the defaults.
func LoadProfile(filename string) (*Profile, error) {
	prof := Default()
	if filename == "" {
		return prof, nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return prof, nil
}

// Validate checks the enumerated settings.
func (p *Profile) Validate() error {
	switch p.Mode {
	case "hex", "asm":
	default:
		return fmt.Errorf("invalid mode: %q", p.Mode)
	}
	switch p.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format: %q", p.Format)
	}
	if _, err := logrus.ParseLevel(p.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
