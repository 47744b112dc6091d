package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes a fixture directory. It is optional: when no
// manifest.yaml is present every file is judged by its //~ directives
// alone.
type Manifest struct {
	// Extensions limits which files count as fixtures. Defaults to .sl.
	Extensions []string `yaml:"extensions"`

	// Fixtures overrides per-file verdicts.
	Fixtures []ManifestEntry `yaml:"fixtures"`
}

// ManifestEntry gives one file an explicit verdict. Clean means the file
// must produce no diagnostics at all; a non-clean file must produce at
// least one, on top of whatever its //~ directives require.
type ManifestEntry struct {
	File  string `yaml:"file"`
	Clean bool   `yaml:"clean"`
	Skip  bool   `yaml:"skip"`
}

const manifestName = "manifest.yaml"

// LoadManifest reads manifest.yaml from a fixture directory. A missing
// file yields the zero manifest, not an error.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", manifestName, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestName, err)
	}
	return &manifest, nil
}

func (m *Manifest) extensions() []string {
	if len(m.Extensions) == 0 {
		return []string{".sl"}
	}
	return m.Extensions
}

func (m *Manifest) entryFor(relPath string) (ManifestEntry, bool) {
	for _, entry := range m.Fixtures {
		if filepath.ToSlash(entry.File) == filepath.ToSlash(relPath) {
			return entry, true
		}
	}
	return ManifestEntry{}, false
}
