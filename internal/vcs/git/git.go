// Package git provides functionality to interact with a Git repository.
package git

import (
	"context"
	"errors"
	"os"
	stdexec "os/exec"
	"path/filepath"
	"strings"

	"github.com/bfgroup/barbarian/internal/exec"
	"github.com/bfgroup/barbarian/internal/fs"
)

// CommandIsInstalled returns true if an executable called "git" is found in
// the directories listed in the PATH environment variable.
func CommandIsInstalled() bool {
	_, err := stdexec.LookPath("git")

	return err == nil
}

// IsGitDir checks if the passed directory is part of a git repository.
// It returns true if dir or any of its parent directories contains a
// directory named ".git".
func IsGitDir(dir string) (bool, error) {
	_, err := fs.FindDirInParentDirs(dir, ".git")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// FindRepositoryRoot returns the root directory of the git repository that
// dir is part of.
// If dir is not part of a git repository, os.ErrNotExist is returned.
func FindRepositoryRoot(dir string) (string, error) {
	gitDir, err := fs.FindDirInParentDirs(dir, ".git")
	if err != nil {
		return "", err
	}

	return filepath.Dir(gitDir), nil
}

// CommitID returns the commit id of HEAD by running git rev-parse in the
// passed directory.
func CommitID(dir string) (string, error) {
	res, err := exec.Command("git", "rev-parse", "HEAD").Directory(dir).ExpectSuccess().RunCombinedOut(context.TODO())
	if err != nil {
		return "", err
	}

	commitID := strings.TrimSpace(res.StrOutput())
	if len(commitID) == 0 {
		return "", errors.New("executing git rev-parse HEAD failed, no Stdout output")
	}

	return commitID, nil
}

// WorktreeIsDirty returns true if the repository contains modified files,
// untracked files are considered, files in .gitignore are ignored.
func WorktreeIsDirty(dir string) (bool, error) {
	res, err := exec.Command("git", "status", "-s").Directory(dir).ExpectSuccess().RunCombinedOut(context.TODO())
	if err != nil {
		return false, err
	}

	return len(res.CombinedOutput) != 0, nil
}

// HaveBranch returns true if the repository has a local branch with the
// passed name.
func HaveBranch(dir, branch string) (bool, error) {
	res, err := exec.Command("git", "branch", "--list", branch).
		Directory(dir).ExpectSuccess().RunCombinedOut(context.TODO())
	if err != nil {
		return false, err
	}

	// the listing prefixes the branch name with markers like "* " or "+ "
	return strings.Trim(res.StrOutput(), "\n\t *+") == branch, nil
}

// Add stages the passed paths.
func Add(dir string, paths ...string) error {
	_, err := exec.Command("git", append([]string{"add", "--"}, paths...)...).
		Directory(dir).ExpectSuccess().Run(context.TODO())

	return err
}

// Commit creates a commit with the passed message.
func Commit(dir, message string) error {
	_, err := exec.Command("git", "commit", "-m", message).
		Directory(dir).ExpectSuccess().Run(context.TODO())

	return err
}

// Push pushes branch to the passed remote.
func Push(dir, remote, branch string) error {
	_, err := exec.Command("git", "push", remote, branch).
		Directory(dir).ExpectSuccess().Run(context.TODO())

	return err
}
