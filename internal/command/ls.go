package command

import (
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "list recipes in the repository",
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
