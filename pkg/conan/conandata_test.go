package conan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const conanDataTestDoc = `sources:
  "1.2.13":
    url: "https://zlib.net/zlib-1.2.13.tar.gz"
    sha256: "b3a24de97a8fdbc835b9833169501030b8977031bcb54b3b3ac13740f846ab30"
  "1.2.12":
    url: "https://zlib.net/zlib-1.2.12.tar.gz"
    sha256: "91844808532e5ce316b3c010929493c0244f3d37593afd6de04f71821d5136d9"
patches:
  "1.2.12":
    - patch_file: "patches/0001-fix-cmake.patch"
`

func TestFilterConanData(t *testing.T) {
	out, err := FilterConanData([]byte(conanDataTestDoc), "1.2.13")
	require.NoError(t, err)

	var data map[string]map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(out, &data))

	require.Contains(t, data, "sources")
	require.NotContains(t, data, "patches")

	require.Contains(t, data["sources"], "1.2.13")
	require.NotContains(t, data["sources"], "1.2.12")
	require.Equal(t, "https://zlib.net/zlib-1.2.13.tar.gz", data["sources"]["1.2.13"]["url"])
}

func TestFilterConanDataKeepsPatchesOfVersion(t *testing.T) {
	out, err := FilterConanData([]byte(conanDataTestDoc), "1.2.12")
	require.NoError(t, err)

	var data map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(out, &data))

	require.Contains(t, data, "sources")
	require.Contains(t, data, "patches")
}

func TestFilterConanDataFileMissingFileIsNoError(t *testing.T) {
	require.NoError(t, FilterConanDataFile(filepath.Join(t.TempDir(), ConanDataFile), "1.0"))
}

func TestFilterConanDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConanDataFile)
	require.NoError(t, os.WriteFile(path, []byte(conanDataTestDoc), 0644))

	require.NoError(t, FilterConanDataFile(path, "1.2.13"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var data map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(content, &data))
	require.NotContains(t, data, "patches")
}
