package command

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const lsRecipesLongHelp = `
List the recipe directories in the repository.
Directories are discovered via the recipe_dirs patterns in the
repository configuration.
`

type lsRecipesCmd struct {
	cobra.Command

	absPaths bool
}

func init() {
	lsCmd.AddCommand(&newLsRecipesCmd().Command)
}

func newLsRecipesCmd() *lsRecipesCmd {
	cmd := lsRecipesCmd{
		Command: cobra.Command{
			Use:   "recipes",
			Short: "list recipe directories",
			Long:  strings.TrimSpace(lsRecipesLongHelp),
			Args:  cobra.NoArgs,
		},
	}

	cmd.Flags().BoolVar(&cmd.absPaths, "abs-path", false,
		"show absolute instead of relative paths")

	cmd.Run = cmd.run

	return &cmd
}

func (c *lsRecipesCmd) run(_ *cobra.Command, _ []string) {
	repo := mustFindRepository()

	recipeDirs, err := repo.DiscoverRecipeDirs()
	exitOnErr(err)

	if len(recipeDirs) == 0 {
		stderr.Printf("no recipes found in %s\n", repo.Path)
		exitFunc(exitCodeNotExist)
	}

	for _, dir := range recipeDirs {
		if c.absPaths {
			stdout.Println(dir)
			continue
		}

		relDir, err := filepath.Rel(repo.Path, dir)
		exitOnErr(err)

		stdout.Println(relDir)
	}
}
