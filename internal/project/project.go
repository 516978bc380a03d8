// Package project reads and writes the .faspi.yaml manifest that marks a
// generated project root.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	oerrors "github.com/faspi/cli/internal/errors"
)

// ManifestFile is the manifest name at the project root.
const ManifestFile = ".faspi.yaml"

// StyleLayered is the only architectural style faspi generates.
const StyleLayered = "layered"

// Manifest records how a project was generated.
type Manifest struct {
	Name         string   `yaml:"name"`
	Style        string   `yaml:"style"`
	Features     []string `yaml:"features"`
	FaspiVersion string   `yaml:"faspi_version"`
}

// Marshal encodes m as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	if m.Features == nil {
		m.Features = []string{}
	}
	return yaml.Marshal(m)
}

// Load reads the manifest in dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerrors.WrapIO(err, "reading project manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// FindRoot walks up from start to the nearest directory holding a manifest.
// It returns start itself when no manifest is found.
func FindRoot(start string) (string, bool) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return start, false
	}

	dir := abs
	for {
		if _, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, false
		}
		dir = parent
	}
}
