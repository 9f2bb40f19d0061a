package command

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bfgroup/barbarian/internal/command/term"
	"github.com/bfgroup/barbarian/internal/fs"
	"github.com/bfgroup/barbarian/pkg/barbarian"
)

const exportLongHelp = `
Export a recipe to the local repository cache.
The recipe and its associated files are copied to the cache directory
in the root of the repository, ready to be uploaded.

The passed reference has the format PKG/VERSION@USER/CHANNEL.
Name and version can be omitted when the conanfile.py declares them,
user and channel can be omitted when they are not relevant.
`

var exportCmd = &cobra.Command{
	Use:   "export PATH REFERENCE",
	Short: "export a recipe to the local repository cache",
	Long:  strings.TrimSpace(exportLongHelp),
	Run:   export,
	Args:  cobra.ExactArgs(2),
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func export(_ *cobra.Command, args []string) {
	recipePath := args[0]
	reference := args[1]

	// the recipe can be addressed by its directory or its conanfile
	if isFile, _ := fs.IsFile(recipePath); isFile {
		recipePath = filepath.Dir(recipePath)
	}

	mustHaveConanInstalled()
	repo := mustFindRepository()

	recipe, err := barbarian.NewRecipe(ctx, repo, recipePath, reference)
	exitOnErr(err)

	stdout.Printf("exporting %s to %s\n",
		term.Highlight(recipe), term.Highlight(recipe.ExportDir()))

	err = repo.ExportRecipe(ctx, recipe)
	exitOnErrf(err, "exporting %s failed", recipe)

	stdout.Printf("%s exported successfully\n", term.Highlight(recipe))
}
