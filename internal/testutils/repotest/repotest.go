// Package repotest creates barbarian repositories for tests.
package repotest

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/bfgroup/barbarian/internal/testutils/fstest"
	"github.com/bfgroup/barbarian/internal/testutils/gittest"
)

// Repo is a barbarian repository in a temporary directory.
type Repo struct {
	// Dir is the root directory of the git repository.
	Dir string
}

// CreateBarbarianRepository creates a git repository in a temporary directory
// with an initial commit.
func CreateBarbarianRepository(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()

	gittest.CreateRepository(t, dir)
	fstest.WriteToFile(t, []byte("# test recipes\n"), filepath.Join(dir, "README.md"))
	fstest.WriteToFile(t, []byte("/.conan/\n"), filepath.Join(dir, ".gitignore"))
	gittest.CommitFilesToGit(t, dir)

	return &Repo{Dir: dir}
}

// CreateRecipe creates a recipe directory containing a conanfile.py and a
// conandata.yml below recipes/ and returns its path.
// The created files are not committed.
func (r *Repo) CreateRecipe(t *testing.T, name, version string) string {
	t.Helper()

	recipeDir := filepath.Join(r.Dir, "recipes", name)

	conanfile := fmt.Sprintf(
		"from conans import ConanFile\n\n\nclass %sConan(ConanFile):\n    name = %q\n    version = %q\n",
		name, name, version,
	)
	fstest.WriteToFile(t, []byte(conanfile), filepath.Join(recipeDir, "conanfile.py"))

	conandata := fmt.Sprintf(
		"sources:\n  %q:\n    url: \"https://example.com/%s-%s.tar.gz\"\n",
		version, name, version,
	)
	fstest.WriteToFile(t, []byte(conandata), filepath.Join(recipeDir, "conandata.yml"))

	return recipeDir
}

// FakeExport populates the repository-local Conan cache with the export data
// that a conan export of the recipe would produce and returns the export
// directory.
// withConanData controls whether the export contains a conandata.yml.
func (r *Repo) FakeExport(t *testing.T, name, version, user, channel, revision string, withConanData bool) string {
	t.Helper()

	exportDir := filepath.Join(r.Dir, ".conan", "data", name, version, user, channel)
	filesDir := filepath.Join(exportDir, "export")

	fstest.WriteToFile(t,
		[]byte(fmt.Sprintf(`{"recipe": {"revision": %q}}`, revision)),
		filepath.Join(exportDir, "metadata.json"),
	)

	conanfile := fmt.Sprintf("class %sConan:\n    name = %q\n    version = %q\n", name, name, version)
	fstest.WriteToFile(t, []byte(conanfile), filepath.Join(filesDir, "conanfile.py"))

	manifest := "123456789\nconanfile.py: d41d8cd98f00b204e9800998ecf8427e\n"
	fstest.WriteToFile(t, []byte(manifest), filepath.Join(filesDir, "conanmanifest.txt"))

	if withConanData {
		conandata := fmt.Sprintf("sources:\n  %q:\n    url: \"https://example.com/src.tar.gz\"\n", version)
		fstest.WriteToFile(t, []byte(conandata), filepath.Join(filesDir, "conandata.yml"))
	}

	return exportDir
}
