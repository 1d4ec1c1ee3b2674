package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/pwgen/internal/crypto"
)

var ErrPasswordMismatch = errors.New("password does not match hash")

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <password> <hash>",
		Short: "Check a password against an argon2id hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := crypto.VerifyPassword(args[0], args[1])
			if err != nil {
				return fmt.Errorf("verifying password: %w", err)
			}
			if !ok {
				return ErrPasswordMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
