// Package manifest loads item manifests from YAML files. A manifest
// describes the pickers' content as a flat list of entries with an
// optional intrinsic size, so hosts and the demo can populate a grid
// without touching real clipboard state.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the manifest schema this package reads. Manifests
// declaring a newer major version are rejected.
const SchemaVersion = "v1.0.0"

// Manifest is the root document of an items YAML file.
type Manifest struct {
	Version  string  `yaml:"version"`
	Sections []Group `yaml:"sections"`
}

// Group is one named run of entries rendered as its own section.
type Group struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Entry describes a single item. Exactly one of Text or File should be
// set. Width and Height carry the source aspect ratio; both zero means
// the dimensions are unknown and must be probed or defaulted by the
// caller.
type Entry struct {
	Text   string  `yaml:"text,omitempty"`
	File   string  `yaml:"file,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Pinned bool    `yaml:"pinned,omitempty"`
}

// HasDimensions reports whether the entry carries a usable size.
func (e Entry) HasDimensions() bool {
	return e.Width > 0 && e.Height > 0
}

// Label returns a short human-readable name for the entry.
func (e Entry) Label() string {
	if e.Text != "" {
		return e.Text
	}
	return e.File
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a manifest document and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	version := strings.TrimSpace(m.Version)
	if version == "" {
		return errors.New("manifest is missing a version")
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid manifest version %q", m.Version)
	}
	if semver.Major(version) != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported manifest version %s (reader supports %s)",
			m.Version, semver.Major(SchemaVersion))
	}
	m.Version = version

	for gi, g := range m.Sections {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("section %d is missing a name", gi)
		}
		for ei, e := range g.Entries {
			if e.Text == "" && e.File == "" {
				return fmt.Errorf("section %q entry %d has neither text nor file", g.Name, ei)
			}
			if e.Text != "" && e.File != "" {
				return fmt.Errorf("section %q entry %d has both text and file", g.Name, ei)
			}
			if e.Width < 0 || e.Height < 0 {
				return fmt.Errorf("section %q entry %d has a negative dimension", g.Name, ei)
			}
		}
	}
	return nil
}

// Section returns the named group, or nil if the manifest has none.
func (m *Manifest) Section(name string) *Group {
	for i := range m.Sections {
		if m.Sections[i].Name == name {
			return &m.Sections[i]
		}
	}
	return nil
}
