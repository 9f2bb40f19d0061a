package git

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bfgroup/barbarian/internal/exec"
)

// WorktreeAdd checks out branch into the directory worktreeDir via
// git worktree add.
func WorktreeAdd(dir, worktreeDir, branch string) error {
	_, err := exec.Command("git", "worktree", "add", worktreeDir, branch).
		Directory(dir).ExpectSuccess().Run(context.TODO())

	return err
}

// WorktreeRemove removes a worktree that was created via WorktreeAdd.
// Untracked and modified files in the worktree are discarded.
func WorktreeRemove(dir, worktreeDir string) error {
	_, err := exec.Command("git", "worktree", "remove", "-f", worktreeDir).
		Directory(dir).ExpectSuccess().Run(context.TODO())

	return err
}

// CreateOrphanBranch creates a branch with the passed name that has no parent
// commit and no files. The branch starts with a single empty commit with the
// passed message.
// If the branch already exists, nothing is done.
//
// The branch is created in a temporary worktree, the current worktree and
// index are left untouched.
func CreateOrphanBranch(dir, branch, message string) error {
	ctx := context.TODO()

	exist, err := HaveBranch(dir, branch)
	if err != nil {
		return err
	}
	if exist {
		return nil
	}

	tmpBranch := fmt.Sprintf("%s-%s", branch, uuid.NewString())
	worktreeDir := filepath.Join(dir, "."+tmpBranch)

	_, err = exec.Command("git", "worktree", "add", "--quiet", "-b", tmpBranch, worktreeDir).
		Directory(dir).ExpectSuccess().Run(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_, _ = exec.Command("git", "worktree", "remove", "-f", worktreeDir).
			Directory(dir).Run(ctx)
		_, _ = exec.Command("git", "branch", "--quiet", "-D", tmpBranch).
			Directory(dir).Run(ctx)
	}()

	steps := [][]string{
		{"checkout", "--quiet", "--orphan", branch},
		{"rm", "--quiet", "-rf", "--ignore-unmatch", "."},
		{"commit", "--allow-empty", "-m", message},
	}

	for _, args := range steps {
		if _, err := exec.Command("git", args...).Directory(worktreeDir).ExpectSuccess().Run(ctx); err != nil {
			return err
		}
	}

	return nil
}
