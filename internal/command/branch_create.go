package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bfgroup/barbarian/internal/command/term"
	"github.com/bfgroup/barbarian/internal/vcs/git"
	"github.com/bfgroup/barbarian/pkg/barbarian"
)

const branchCreateLongHelp = `
Create the upload branch in the local git repository.
The branch is created as an orphan branch with an empty initial commit.
If the branch already exists the command does nothing.
`

var branchCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "create the upload branch",
	Long:  strings.TrimSpace(branchCreateLongHelp),
	Run:   branchCreate,
	Args:  cobra.NoArgs,
}

func init() {
	branchCmd.AddCommand(branchCreateCmd)
}

func branchCreate(_ *cobra.Command, _ []string) {
	mustHaveGitInstalled()
	repo := mustFindRepository()
	branch := repo.Cfg.Upload.Branch

	err := git.CreateOrphanBranch(repo.Path, branch, barbarian.UploadBranchMessage)
	exitOnErrf(err, "creating branch %s failed", branch)

	stdout.Printf("branch %s exists\n", term.Highlight(branch))
}
