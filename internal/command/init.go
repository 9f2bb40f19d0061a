package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bfgroup/barbarian/internal/command/term"
)

const (
	cmdInitRepo = "barbarian init repo"
	cmdExport   = "barbarian export"
)

var initLongHelp = fmt.Sprintf(`
The init commands create barbarian configuration files.

To setup barbarian for a new repository run:
%s
`, term.Highlight(cmdInitRepo))

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "create configuration files",
	Long:  strings.TrimSpace(initLongHelp),
}

func init() {
	rootCmd.AddCommand(initCmd)
}
