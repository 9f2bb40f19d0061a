package conan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfgroup/barbarian/internal/testutils/fstest"
)

func TestReadExportedRevision(t *testing.T) {
	exportDir := t.TempDir()

	fstest.WriteToFile(t,
		[]byte(`{"recipe": {"revision": "6a8e811a532ce1a6d289c8ec6183019f"}, "packages": {}}`),
		filepath.Join(exportDir, MetadataFile),
	)

	rev, err := ReadExportedRevision(exportDir)
	require.NoError(t, err)
	require.Equal(t, "6a8e811a532ce1a6d289c8ec6183019f", rev)
}

func TestReadExportedRevisionMissingFile(t *testing.T) {
	_, err := ReadExportedRevision(t.TempDir())
	require.Error(t, err)
}

func TestReadExportedRevisionMissingRevision(t *testing.T) {
	exportDir := t.TempDir()

	fstest.WriteToFile(t, []byte(`{"recipe": {}}`), filepath.Join(exportDir, MetadataFile))

	_, err := ReadExportedRevision(exportDir)
	require.Error(t, err)
}
