package conan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MetadataFile is the name of the file in that conan records information
// about an exported recipe.
const MetadataFile = "metadata.json"

type metadata struct {
	Recipe struct {
		Revision string `json:"revision"`
	} `json:"recipe"`
}

// ReadExportedRevision reads the recipe revision from the metadata.json file
// that conan export created in exportDir.
func ReadExportedRevision(exportDir string) (string, error) {
	path := filepath.Join(exportDir, MetadataFile)

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s failed: %w", path, err)
	}

	var md metadata
	if err := json.Unmarshal(content, &md); err != nil {
		return "", fmt.Errorf("parsing %s failed: %w", path, err)
	}

	if md.Recipe.Revision == "" {
		return "", fmt.Errorf("%s does not contain a recipe revision", path)
	}

	return md.Recipe.Revision, nil
}
