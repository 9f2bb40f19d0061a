package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfgroup/barbarian/internal/exec"
	"github.com/bfgroup/barbarian/internal/fs"
	"github.com/bfgroup/barbarian/internal/log"
	"github.com/bfgroup/barbarian/internal/testutils/fstest"
	"github.com/bfgroup/barbarian/internal/testutils/gittest"
)

func redirectExecLogs(t *testing.T) {
	log.RedirectToTestingLog(t)
	oldExecLogFn := exec.DefaultLogFn
	exec.DefaultLogFn = t.Logf
	t.Cleanup(func() {
		exec.DefaultLogFn = oldExecLogFn
	})
}

func TestFindRepositoryRoot(t *testing.T) {
	redirectExecLogs(t)

	tempDir := t.TempDir()
	gittest.CreateRepository(t, tempDir)

	nested := filepath.Join(tempDir, "recipes", "zlib")
	require.NoError(t, os.MkdirAll(nested, 0755))

	root, err := FindRepositoryRoot(nested)
	require.NoError(t, err)

	// resolve symlinks, on MacOS TempDir returns a symlinked path
	wantRoot, err := fs.RealPath(tempDir)
	require.NoError(t, err)
	gotRoot, err := fs.RealPath(root)
	require.NoError(t, err)
	require.Equal(t, wantRoot, gotRoot)
}

func TestFindRepositoryRootNotAGitDir(t *testing.T) {
	redirectExecLogs(t)

	_, err := FindRepositoryRoot(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCommitIDAndWorktreeIsDirty(t *testing.T) {
	redirectExecLogs(t)

	tempDir := t.TempDir()
	gittest.CreateRepository(t, tempDir)
	fstest.WriteToFile(t, []byte("abc"), filepath.Join(tempDir, "f1"))
	gittest.CommitFilesToGit(t, tempDir)

	commitID, err := CommitID(tempDir)
	require.NoError(t, err)
	require.Len(t, commitID, 40)

	dirty, err := WorktreeIsDirty(tempDir)
	require.NoError(t, err)
	require.False(t, dirty)

	fstest.WriteToFile(t, []byte("untracked"), filepath.Join(tempDir, "f2"))

	dirty, err = WorktreeIsDirty(tempDir)
	require.NoError(t, err)
	require.True(t, dirty)
}

func TestCreateOrphanBranch(t *testing.T) {
	redirectExecLogs(t)

	tempDir := t.TempDir()
	gittest.CreateRepository(t, tempDir)
	fstest.WriteToFile(t, []byte("abc"), filepath.Join(tempDir, "f1"))
	gittest.CommitFilesToGit(t, tempDir)

	exist, err := HaveBranch(tempDir, "barbarian")
	require.NoError(t, err)
	require.False(t, exist)

	require.NoError(t, CreateOrphanBranch(tempDir, "barbarian", "Barbarian upload branch."))

	exist, err = HaveBranch(tempDir, "barbarian")
	require.NoError(t, err)
	require.True(t, exist)

	// creating it again must be a no-op
	require.NoError(t, CreateOrphanBranch(tempDir, "barbarian", "Barbarian upload branch."))

	// the current worktree must be untouched
	dirty, err := WorktreeIsDirty(tempDir)
	require.NoError(t, err)
	require.False(t, dirty)
}

func TestWorktreeAddCommitPush(t *testing.T) {
	redirectExecLogs(t)

	tempDir := t.TempDir()
	gittest.CreateRepository(t, tempDir)
	fstest.WriteToFile(t, []byte("abc"), filepath.Join(tempDir, "f1"))
	gittest.CommitFilesToGit(t, tempDir)

	remoteDir := t.TempDir()
	gittest.CreateBareRepository(t, remoteDir)
	gittest.AddRemote(t, tempDir, "origin", remoteDir)

	require.NoError(t, CreateOrphanBranch(tempDir, "barbarian", "Barbarian upload branch."))

	worktreeDir := filepath.Join(tempDir, ".barbarian_upload")
	require.NoError(t, WorktreeAdd(tempDir, worktreeDir, "barbarian"))

	fstest.WriteToFile(t, []byte("{}"), filepath.Join(worktreeDir, "latest.json"))
	require.NoError(t, Add(worktreeDir, "."))
	require.NoError(t, Commit(worktreeDir, "Upload zlib/1.2.13 revision abc."))

	require.NoError(t, Push(worktreeDir, "origin", "barbarian"))
	require.NoError(t, WorktreeRemove(tempDir, worktreeDir))

	_, err := os.Stat(worktreeDir)
	require.ErrorIs(t, err, os.ErrNotExist)
}
