package command

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bfgroup/barbarian/internal/command/term"
	"github.com/bfgroup/barbarian/internal/fs"
)

const ciServiceGithubActions = "ga"

// conanRemotesPlaceholder is replaced in the workflow template with the
// comma-separated Conan remotes from the repository configuration.
const conanRemotesPlaceholder = "__CONAN_REMOTES__"

//go:embed ci_ga_workflow.yml
var gaConanWorkflow string

// gaConanWorkflowPath is the path of the generated workflow file, relative to
// the repository root.
var gaConanWorkflowPath = filepath.Join(".github", "workflows", "conan.yml")

const ciLongHelp = `
Create a continuous integration setup that builds and tests the recipes
in the repository.

Supported services:
	ga - GitHub Actions
`

type ciCmd struct {
	cobra.Command

	service string
}

func init() {
	rootCmd.AddCommand(&newCiCmd().Command)
}

func newCiCmd() *ciCmd {
	cmd := ciCmd{
		Command: cobra.Command{
			Use:   "ci",
			Short: "create a continuous integration setup for recipe testing",
			Long:  strings.TrimSpace(ciLongHelp),
			Args:  cobra.NoArgs,
		},
	}

	cmd.Flags().StringVar(&cmd.service, "service", ciServiceGithubActions,
		"the continuous integration service to create a setup for, supported values: 'ga'")

	cmd.Run = cmd.run

	return &cmd
}

func (c *ciCmd) run(_ *cobra.Command, _ []string) {
	if c.service != ciServiceGithubActions {
		exitOnErr(fmt.Errorf("unsupported service: %q", c.service))
	}

	repo := mustFindRepository()

	workflowPath := filepath.Join(repo.Path, gaConanWorkflowPath)
	remotes := strings.Join(repo.Cfg.CI.ConanRemotes, ", ")
	workflow := strings.ReplaceAll(gaConanWorkflow, conanRemotesPlaceholder, remotes)

	err := fs.Mkdir(filepath.Dir(workflowPath))
	exitOnErr(err)

	err = os.WriteFile(workflowPath, []byte(workflow), 0644)
	exitOnErrf(err, "writing %s failed", workflowPath)

	stdout.Printf("GitHub Actions workflow written to %s\n",
		term.Highlight(workflowPath))
}
