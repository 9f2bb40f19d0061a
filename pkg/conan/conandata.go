package conan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConanDataFile is the name of the optional file that records download URLs,
// checksums and patches per recipe version.
const ConanDataFile = "conandata.yml"

// FilterConanData removes all information from a conandata.yml document that
// does not belong to the passed version.
// Top-level sections that have no entry for the version are dropped, in the
// remaining sections only the subtree of the version is kept.
func FilterConanData(in []byte, version string) ([]byte, error) {
	var data map[string]map[string]any

	if err := yaml.Unmarshal(in, &data); err != nil {
		return nil, fmt.Errorf("parsing conandata failed: %w", err)
	}

	out := map[string]map[string]any{}
	for section, entries := range data {
		if entry, exist := entries[version]; exist {
			out[section] = map[string]any{version: entry}
		}
	}

	return yaml.Marshal(out)
}

// FilterConanDataFile applies FilterConanData in-place to the file at path.
// A missing file is not an error, conandata.yml is optional.
func FilterConanDataFile(path, version string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	filtered, err := FilterConanData(content, version)
	if err != nil {
		return fmt.Errorf("filtering %s failed: %w", path, err)
	}

	return os.WriteFile(path, filtered, 0644)
}
