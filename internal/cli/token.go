package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/pwgen/internal/crypto"
)

var ErrSecretRequired = errors.New("token secret is required (--secret or TOKEN_SECRET)")

func newTokenCmd() *cobra.Command {
	var (
		client string
		secret string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API client token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("TOKEN_SECRET")
			}
			if secret == "" {
				return ErrSecretRequired
			}

			token, err := crypto.GenerateToken(client, secret, expiry)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&client, "client", "", "client name recorded in the token")
	f.StringVar(&secret, "secret", "", "signing secret (defaults to $TOKEN_SECRET)")
	f.DurationVar(&expiry, "expiry", 30*24*time.Hour, "token lifetime")
	cmd.MarkFlagRequired("client")

	return cmd
}
