package compmatch

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cboone/compmatch/component"
)

// ConfigEnv names the environment variable FromEnv reads the config file
// path from.
const ConfigEnv = "COMPMATCH_CONFIG"

// ErrNoConfig is returned by FromEnv when ConfigEnv is unset.
var ErrNoConfig = errors.New("compmatch: config: " + ConfigEnv + " is not set")

// fileConfig is the YAML shape read by LoadConfig:
//
//	mountOptions:
//	  props:
//	    name: Alice
//	  globals:
//	    locale: ja
//	  slots:
//	    default: <p>slot</p>
//	timeout: 2s
type fileConfig struct {
	MountOptions component.MountOptions `yaml:"mountOptions"`
	Timeout      string                 `yaml:"timeout"`
}

// LoadConfig reads a YAML config file and returns an Option applying it.
// Fields left out of the file keep their defaults.
func LoadConfig(path string) (Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compmatch: config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Option, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("compmatch: config: %w", err)
	}

	var timeout time.Duration
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("compmatch: config: timeout: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("compmatch: config: timeout must be positive, got %v", d)
		}
		timeout = d
	}

	return func(o *options) {
		o.mount = o.mount.Merge(fc.MountOptions)
		if timeout > 0 {
			o.timeout = timeout
		}
	}, nil
}

// FromEnv loads the config file named by ConfigEnv. It returns ErrNoConfig
// when the variable is unset.
func FromEnv() (Option, error) {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		return nil, ErrNoConfig
	}
	return LoadConfig(path)
}
