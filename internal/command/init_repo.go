package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bfgroup/barbarian/internal/command/term"
	"github.com/bfgroup/barbarian/pkg/barbarian"
	"github.com/bfgroup/barbarian/pkg/cfg"
)

const initRepoLongHelp = `
Create a repository configuration file.
This is the first command that should be run when setting up barbarian
for a new repository.
If no argument is passed, the file is created in the current directory.
`

var initRepoCmd = &cobra.Command{
	Use:   "repo [DIR]",
	Short: "create a repository config file",
	Long:  strings.TrimSpace(initRepoLongHelp),
	Run:   initRepo,
	Args:  cobra.MaximumNArgs(1),
}

func init() {
	initCmd.AddCommand(initRepoCmd)
}

func initRepo(_ *cobra.Command, args []string) {
	var repoDir string
	var err error

	if len(args) == 1 {
		repoDir = args[0]
	} else {
		repoDir, err = os.Getwd()
		exitOnErr(err)
	}

	repoCfg := cfg.ExampleRepository()
	repoCfgPath := filepath.Join(repoDir, barbarian.RepositoryCfgFile)

	err = repoCfg.ToFile(repoCfgPath)
	if err != nil {
		if os.IsExist(err) {
			stderr.Printf("%s already exists\n", repoCfgPath)
			exitFunc(exitCodeAlreadyExist)
		}

		exitOnErr(err)
	}

	stdout.Printf("repository configuration was written to %s\n",
		term.Highlight(repoCfgPath))
	stdout.Printf("\nNext Steps:\n"+
		"1. Adapt your %s configuration file\n"+
		"2. Run '%s' to export a recipe to the repository cache\n",
		term.Highlight(barbarian.RepositoryCfgFile),
		term.Highlight(cmdExport))
}
