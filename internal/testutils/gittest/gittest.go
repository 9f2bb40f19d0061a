// Package gittest provides test utilities to create and populate Git
// repositories.
package gittest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfgroup/barbarian/internal/exec"
)

// CreateRepository initializes a git repository in directory.
// A commit identity is configured for the repository so that commits succeed
// in environments without a global git config.
func CreateRepository(t *testing.T, directory string) {
	t.Helper()
	ctx := context.Background()

	_, err := exec.Command("git", "init", "-b", "main", ".").
		Directory(directory).ExpectSuccess().Run(ctx)
	require.NoError(t, err)

	_, err = exec.Command("git", "config", "user.email", "barbarian-test@example.com").
		Directory(directory).ExpectSuccess().Run(ctx)
	require.NoError(t, err)

	_, err = exec.Command("git", "config", "user.name", "barbarian test").
		Directory(directory).ExpectSuccess().Run(ctx)
	require.NoError(t, err)
}

// CreateBareRepository initializes a bare git repository in directory.
// It can serve as push target for test repositories.
func CreateBareRepository(t *testing.T, directory string) {
	t.Helper()

	_, err := exec.Command("git", "init", "--bare", "-b", "main", ".").
		Directory(directory).ExpectSuccess().Run(context.Background())
	require.NoError(t, err)
}

// AddRemote registers url as remote with the passed name.
func AddRemote(t *testing.T, directory, name, url string) {
	t.Helper()

	_, err := exec.Command("git", "remote", "add", name, url).
		Directory(directory).ExpectSuccess().Run(context.Background())
	require.NoError(t, err)
}

// CommitFilesToGit adds and commits all files in directory (incl.
// subdirectories) to git.
func CommitFilesToGit(t *testing.T, directory string) []string {
	var files []string

	t.Helper()
	ctx := context.Background()

	err := filepath.Walk(directory, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if fi.IsDir() && fi.Name() == ".git" {
			return filepath.SkipDir
		}

		if !fi.IsDir() {
			files = append(files, path)
		}

		return nil
	})

	require.NoError(t, err)

	_, err = exec.Command("git", append([]string{"add", "-f"}, files...)...).
		Directory(directory).
		ExpectSuccess().
		Run(ctx)
	require.NoError(t, err)

	_, err = exec.Command("git", "commit", "-a", "-m", "barbarian commit").
		Directory(directory).
		ExpectSuccess().
		Run(ctx)
	require.NoError(t, err)

	return files
}
