package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bfgroup/barbarian/internal/command/term"
	"github.com/bfgroup/barbarian/internal/vcs/git"
	"github.com/bfgroup/barbarian/pkg/barbarian"
)

const branchPushLongHelp = `
Push the upload branch to the git remote.
The branch is created first when it does not exist.
`

var branchPushCmd = &cobra.Command{
	Use:   "push",
	Short: "push the upload branch to the git remote",
	Long:  strings.TrimSpace(branchPushLongHelp),
	Run:   branchPush,
	Args:  cobra.NoArgs,
}

func init() {
	branchCmd.AddCommand(branchPushCmd)
}

func branchPush(_ *cobra.Command, _ []string) {
	mustHaveGitInstalled()
	repo := mustFindRepository()
	branch := repo.Cfg.Upload.Branch
	remote := repo.Cfg.Upload.Remote

	err := git.CreateOrphanBranch(repo.Path, branch, barbarian.UploadBranchMessage)
	exitOnErrf(err, "creating branch %s failed", branch)

	err = git.Push(repo.Path, remote, branch)
	exitOnErrf(err, "pushing branch %s to %s failed", branch, remote)

	stdout.Printf("branch %s pushed to %s\n",
		term.Highlight(branch), term.Highlight(remote))
}
