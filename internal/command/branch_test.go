package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfgroup/barbarian/internal/testutils/gittest"
	"github.com/bfgroup/barbarian/internal/testutils/repotest"
	"github.com/bfgroup/barbarian/internal/vcs/git"
	"github.com/bfgroup/barbarian/pkg/cfg"
)

func TestBranchCreate(t *testing.T) {
	initTest(t)

	r := repotest.CreateBarbarianRepository(t)
	chdir(t, r.Dir)

	branchCreate(branchCreateCmd, nil)

	exists, err := git.HaveBranch(r.Dir, cfg.DefaultUploadBranch)
	require.NoError(t, err)
	require.True(t, exists)

	// running it again must succeed and keep the branch
	branchCreate(branchCreateCmd, nil)

	exists, err = git.HaveBranch(r.Dir, cfg.DefaultUploadBranch)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestBranchPush(t *testing.T) {
	initTest(t)

	r := repotest.CreateBarbarianRepository(t)
	remoteDir := t.TempDir()
	gittest.CreateBareRepository(t, remoteDir)
	gittest.AddRemote(t, r.Dir, cfg.DefaultUploadRemote, remoteDir)
	chdir(t, r.Dir)

	branchPush(branchPushCmd, nil)

	exists, err := git.HaveBranch(remoteDir, cfg.DefaultUploadBranch)
	require.NoError(t, err)
	require.True(t, exists, "upload branch was not pushed to the remote")
}
