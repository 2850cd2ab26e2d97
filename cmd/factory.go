package cmd

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// StandardRegistryPath returns the identity document directory based on the
// ATP_PATH environment variable, falling back to the default:
// $HOME/.atp/registry
func StandardRegistryPath() string {
	path := os.Getenv("ATP_PATH")
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			panic(err)
		}
		path = filepath.Join(home, ".atp", "registry")
	}

	return path
}
