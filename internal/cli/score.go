package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/pwgen/internal/crypto"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [password]",
		Short: "Rate the strength of a password",
		Long:  "Rate the strength of a password. Without an argument the password is read from the first line of stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			result := crypto.Score(password)
			fmt.Fprintf(cmd.OutOrStdout(), "score: %d\nlevel: %s\n", result.Score, result.Level)
			return nil
		},
	}
}
