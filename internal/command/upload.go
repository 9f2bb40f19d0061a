package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bfgroup/barbarian/internal/command/term"
	"github.com/bfgroup/barbarian/pkg/barbarian"
)

const uploadLongHelp = `
Upload the exported recipe to the publish branch and push it to the
git remote.
The recipe must have been exported before with 'barbarian export'.

The passed reference has the format PKG/VERSION@USER/CHANNEL.
User and channel can be omitted when they are not relevant.
`

var uploadCmd = &cobra.Command{
	Use:   "upload REFERENCE",
	Short: "upload an exported recipe to the publish branch",
	Long:  strings.TrimSpace(uploadLongHelp),
	Run:   upload,
	Args:  cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func upload(_ *cobra.Command, args []string) {
	mustHaveGitInstalled()
	repo := mustFindRepository()

	recipe, err := barbarian.NewRecipe(ctx, repo, "", args[0])
	exitOnErr(err)

	stdout.Printf("uploading %s to branch %s\n",
		term.Highlight(recipe), term.Highlight(repo.Cfg.Upload.Branch))

	revision, err := barbarian.NewUploader(repo).UploadRecipe(ctx, recipe)
	exitOnErrf(err, "uploading %s failed", recipe)

	stdout.Printf("%s revision %s uploaded to %s\n",
		term.Highlight(recipe),
		term.Highlight(revision),
		term.Highlight(repo.Cfg.Upload.Remote+"/"+repo.Cfg.Upload.Branch))
}
