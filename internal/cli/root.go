// Package cli implements the pwgen command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the pwgen command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pwgen",
		Short:         "Generate random passwords and rate password strength",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(),
		newScoreCmd(),
		newVerifyCmd(),
		newTokenCmd(),
	)

	return root
}
