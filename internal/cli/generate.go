package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/pwgen/internal/crypto"
)

var ErrCountInvalid = errors.New("count must be at least 1")

type generateOptions struct {
	length    int
	noUpper   bool
	noLower   bool
	noDigits  bool
	noSymbols bool
	count     int
	hash      bool
	seed      uint64
	quiet     bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate one or more passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.length < crypto.MinLength || opts.length > crypto.MaxLength {
				return fmt.Errorf("length must be between %d and %d", crypto.MinLength, crypto.MaxLength)
			}
			if opts.count < 1 {
				return ErrCountInvalid
			}

			var src crypto.Source = crypto.CryptoSource{}
			if cmd.Flags().Changed("seed") {
				src = crypto.NewMathSource(opts.seed)
			}

			policy := opts.policy()
			out := cmd.OutOrStdout()
			for i := 0; i < opts.count; i++ {
				password := crypto.Generate(policy, src)
				fmt.Fprint(out, password)
				if !opts.quiet {
					result := crypto.Score(password)
					fmt.Fprintf(out, "\t%s (%d)", result.Level, result.Score)
				}
				if opts.hash {
					hash, err := crypto.HashPassword(password)
					if err != nil {
						return fmt.Errorf("hashing password: %w", err)
					}
					fmt.Fprintf(out, "\t%s", hash)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "l", crypto.DefaultPolicy().Length, "password length (8-64)")
	f.BoolVar(&opts.noUpper, "no-upper", false, "exclude uppercase letters")
	f.BoolVar(&opts.noLower, "no-lower", false, "exclude lowercase letters")
	f.BoolVar(&opts.noDigits, "no-digits", false, "exclude digits")
	f.BoolVar(&opts.noSymbols, "no-symbols", false, "exclude symbols")
	f.IntVarP(&opts.count, "count", "n", 1, "number of passwords")
	f.BoolVar(&opts.hash, "hash", false, "print an argon2id hash next to each password")
	f.Uint64Var(&opts.seed, "seed", 0, "use a seeded, non-cryptographic source (reproducible output)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "omit the strength rating")

	return cmd
}

// policy builds the generation policy. Excluding every class leaves
// lowercase, matching the generator's fallback.
func (o generateOptions) policy() crypto.Policy {
	p := crypto.DefaultPolicy()
	p.Length = o.length
	if o.noUpper {
		p.Classes = p.Classes.Without(crypto.Uppercase)
	}
	if o.noLower {
		p.Classes = p.Classes.Without(crypto.Lowercase)
	}
	if o.noDigits {
		p.Classes = p.Classes.Without(crypto.Digit)
	}
	if o.noSymbols {
		p.Classes = p.Classes.Without(crypto.Symbol)
	}
	return p
}
