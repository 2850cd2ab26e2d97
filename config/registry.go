package config

import "github.com/qri-io/jsonschema"

// DefaultRefreshMinutes is how often the document directory is re-indexed
var DefaultRefreshMinutes = 5

// Registry holds configuration for the identity document source
type Registry struct {
	// Path is the directory of identity documents to index
	Path string `json:"path"`
	// RefreshMinutes is the re-index interval. The registry stays
	// queryable on the prior index while a refresh runs
	RefreshMinutes int `json:"refreshminutes"`
}

// DefaultRegistry returns the default registry configuration
func DefaultRegistry() *Registry {
	return &Registry{
		Path:           "",
		RefreshMinutes: DefaultRefreshMinutes,
	}
}

// Validate validates all fields of registry returning all errors found.
func (r Registry) Validate() error {
	schema := jsonschema.Must(`{
    "$schema": "http://json-schema.org/draft-06/schema#",
    "title": "registry",
    "description": "Config for the identity document source",
    "type": "object",
    "required": ["path", "refreshminutes"],
    "properties": {
      "path": {
        "description": "The directory of identity documents to index",
        "type": "string"
      },
      "refreshminutes": {
        "description": "Minutes between wholesale re-indexes of the document directory",
        "type": "integer",
        "minimum": 0
      }
    }
  }`)
	return validate(schema, &r)
}

// Copy returns a deep copy of a Registry struct
func (r *Registry) Copy() *Registry {
	return &Registry{
		Path:           r.Path,
		RefreshMinutes: r.RefreshMinutes,
	}
}
