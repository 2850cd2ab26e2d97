package config

import "github.com/qri-io/jsonschema"

// DefaultAPIPort is the port the registry JSON API serves on by default
var DefaultAPIPort = 2610

// API holds configuration for the registry JSON api
type API struct {
	Enabled bool `json:"enabled"`
	// Port specifies the port to listen for JSON API calls
	Port int `json:"port"`
	// read-only mode. the registry has no write surface today, the flag is
	// reserved so future admin endpoints default to off
	ReadOnly bool `json:"readonly"`
	// support CORS signing from a list of origins
	AllowedOrigins []string `json:"allowedorigins,omitempty"`
}

// Validate validates all fields of api returning all errors found.
func (a API) Validate() error {
	schema := jsonschema.Must(`{
    "$schema": "http://json-schema.org/draft-06/schema#",
    "title": "api",
    "description": "Config for the registry json api",
    "type": "object",
    "required": ["enabled", "port", "readonly"],
    "properties": {
      "enabled": {
        "description": "When false, the api port does not listen for calls",
        "type": "boolean"
      },
      "port": {
        "description": "The port that listens for JSON API calls",
        "type": "integer"
      },
      "readonly": {
        "description": "When true, any future mutating endpoints stay disabled",
        "type": "boolean"
      },
      "allowedorigins": {
        "description": "Support CORS signing from a list of origins",
        "type": "array",
        "items": {
          "type": "string"
        }
      }
    }
  }`)
	return validate(schema, &a)
}

// DefaultAPI returns the default configuration details
func DefaultAPI() *API {
	return &API{
		Enabled:        true,
		Port:           DefaultAPIPort,
		AllowedOrigins: []string{"http://localhost:2610"},
	}
}

// Copy returns a deep copy of an API struct
func (a *API) Copy() *API {
	res := &API{
		Enabled:  a.Enabled,
		Port:     a.Port,
		ReadOnly: a.ReadOnly,
	}
	if a.AllowedOrigins != nil {
		res.AllowedOrigins = make([]string, len(a.AllowedOrigins))
		copy(res.AllowedOrigins, a.AllowedOrigins)
	}
	return res
}
