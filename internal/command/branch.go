package command

import (
	"github.com/spf13/cobra"
)

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "manage the branch that recipes are uploaded to",
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
