package cfg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExampleRepositoryIsValid(t *testing.T) {
	require.NoError(t, ExampleRepository().Validate())
}

func TestRepositoryWrittenAndReadCfgIsValid(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".barbarian.toml")

	r := ExampleRepository()
	require.NoError(t, r.ToFile(cfgPath))

	read, err := RepositoryFromFile(cfgPath)
	require.NoError(t, err)
	require.NoError(t, read.Validate())

	require.Equal(t, r.Upload, read.Upload)
	require.Equal(t, r.Discover, read.Discover)
	require.Equal(t, r.CI, read.CI)
	require.Equal(t, cfgPath, read.FilePath())
}

func TestToFileDoesNotOverwriteByDefault(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".barbarian.toml")

	require.NoError(t, ExampleRepository().ToFile(cfgPath))
	require.Error(t, ExampleRepository().ToFile(cfgPath))
	require.NoError(t, ExampleRepository().ToFile(cfgPath, ToFileOptOverwrite()))
}

func TestRepositoryFromFileAppliesDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".barbarian.toml")

	r := Repository{ConfigVersion: Version}
	require.NoError(t, r.ToFile(cfgPath))

	read, err := RepositoryFromFile(cfgPath)
	require.NoError(t, err)
	require.NoError(t, read.Validate())

	require.Equal(t, DefaultUploadBranch, read.Upload.Branch)
	require.Equal(t, DefaultUploadRemote, read.Upload.Remote)
	require.Equal(t, []string{"recipes/*"}, read.Discover.RecipeDirs)
	require.Equal(t, DefaultConanRemotes, read.CI.ConanRemotes)
}

func TestValidateRejectsWrongVersion(t *testing.T) {
	r := ExampleRepository()
	r.ConfigVersion = Version + 1
	require.Error(t, r.Validate())

	r.ConfigVersion = 0
	require.Error(t, r.Validate())
}

func TestValidateFieldErrorContainsPath(t *testing.T) {
	r := ExampleRepository()
	r.Upload.Branch = ""

	err := r.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Upload.branch")
}
