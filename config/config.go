// Package config encapsulates registry configuration details. configuration
// is stored as a .yaml file, or assembled from defaults when no file exists
package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/qri-io/jsonschema"
	"gopkg.in/yaml.v2"
)

// Config encapsulates all configuration details for the registry service
type Config struct {
	Registry *Registry
	API      *API
	Logging  *Logging
}

// DefaultConfig gives a new default registry configuration
func DefaultConfig() *Config {
	return &Config{
		Registry: DefaultRegistry(),
		API:      DefaultAPI(),
		Logging:  DefaultLogging(),
	}
}

// SummaryString creates a pretty string summarizing the configuration,
// useful for log output
func (cfg Config) SummaryString() (summary string) {
	summary = "\n"
	if cfg.Registry != nil {
		summary += fmt.Sprintf("registry path:\t%s\nrefresh every:\t%d minutes\n", cfg.Registry.Path, cfg.Registry.RefreshMinutes)
	}
	if cfg.API != nil && cfg.API.Enabled {
		summary += fmt.Sprintf("API port:\t%d\n", cfg.API.Port)
	}
	return summary
}

// ReadFromFile reads a YAML configuration file from path
func ReadFromFile(path string) (cfg *Config, err error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	cfg = &Config{}
	err = yaml.Unmarshal(data, cfg)
	return
}

// WriteToFile encodes a configration to YAML and writes it to path
func (cfg Config) WriteToFile(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

// Validate validates each section of the config struct, returning the first
// error
func (cfg Config) Validate() error {
	if cfg.Registry != nil {
		if err := cfg.Registry.Validate(); err != nil {
			return err
		}
	}
	if cfg.API != nil {
		if err := cfg.API.Validate(); err != nil {
			return err
		}
	}
	if cfg.Logging != nil {
		if err := cfg.Logging.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a deep copy of the Config struct
func (cfg *Config) Copy() *Config {
	res := &Config{}
	if cfg.Registry != nil {
		res.Registry = cfg.Registry.Copy()
	}
	if cfg.API != nil {
		res.API = cfg.API.Copy()
	}
	if cfg.Logging != nil {
		res.Logging = cfg.Logging.Copy()
	}
	return res
}

// validate is a helper function that wraps json.Marshal & ValidateBytes.
// it is used by each struct that is in a Config field
func validate(rs *jsonschema.RootSchema, s interface{}) error {
	strct, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("error marshaling config section to json: %s", err)
	}
	if errors, err := rs.ValidateBytes(strct); len(errors) > 0 {
		return fmt.Errorf("%s", errors[0])
	} else if err != nil {
		return err
	}
	return nil
}
