package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/pwgen/internal/crypto"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	out, err := run(t, "", "generate", "-q", "-n", "5", "-l", "20")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Len(t, line, 20)
	}
}

func TestGenerateCmdSeedIsReproducible(t *testing.T) {
	first, err := run(t, "", "generate", "--seed", "7", "-n", "3")
	require.NoError(t, err)
	second, err := run(t, "", "generate", "--seed", "7", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateCmdExcludeAllFallsBackToLowercase(t *testing.T) {
	out, err := run(t, "", "generate", "-q", "--no-upper", "--no-lower", "--no-digits", "--no-symbols")
	require.NoError(t, err)

	password := strings.TrimSpace(out)
	assert.Len(t, password, crypto.DefaultLength)
	assert.Empty(t, strings.Trim(password, "abcdefghijklmnopqrstuvwxyz"))
}

func TestGenerateCmdRejectsBadFlags(t *testing.T) {
	_, err := run(t, "", "generate", "-l", "7")
	assert.Error(t, err)
	_, err = run(t, "", "generate", "-l", "65")
	assert.Error(t, err)
	_, err = run(t, "", "generate", "-n", "0")
	assert.ErrorIs(t, err, ErrCountInvalid)
}

func TestScoreCmd(t *testing.T) {
	out, err := run(t, "", "score", "abcdefghijklmnopqrst")
	require.NoError(t, err)
	assert.Equal(t, "score: 70\nlevel: strong\n", out)
}

func TestScoreCmdStdin(t *testing.T) {
	out, err := run(t, "aA1bc\n", "score")
	require.NoError(t, err)
	assert.Equal(t, "score: 50\nlevel: good\n", out)

	out, err = run(t, "", "score")
	require.NoError(t, err)
	assert.Equal(t, "score: 0\nlevel: weak\n", out)
}

func TestVerifyCmd(t *testing.T) {
	hash, err := crypto.HashPasswordWithParams("hunter2hunter2", crypto.HashParams{
		Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	})
	require.NoError(t, err)

	out, err := run(t, "", "verify", "hunter2hunter2", hash)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = run(t, "", "verify", "wrong", hash)
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = run(t, "", "verify", "x", "not-a-hash")
	assert.ErrorIs(t, err, crypto.ErrInvalidHashFormat)
}

func TestTokenCmd(t *testing.T) {
	out, err := run(t, "", "token", "--client", "ci-runner", "--secret", "s3cret")
	require.NoError(t, err)

	claims, err := crypto.ValidateToken(strings.TrimSpace(out), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ci-runner", claims.Client())
}

func TestTokenCmdRequiresSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")
	_, err := run(t, "", "token", "--client", "ci-runner")
	assert.ErrorIs(t, err, ErrSecretRequired)
}

func TestVerifyCmdRejectsUnsafeParams(t *testing.T) {
	for _, hash := range []string{
		"$argon2id$v=19$m=8,t=0,p=1$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=8,t=1,p=0$c2FsdHNhbHQ$a2V5a2V5",
	} {
		var err error
		require.NotPanics(t, func() {
			_, err = run(t, "", "verify", "x", hash)
		}, hash)
		assert.ErrorIs(t, err, crypto.ErrInvalidHashFormat, hash)
	}
}

func TestGenerateCmdQuietWithHash(t *testing.T) {
	out, err := run(t, "", "generate", "-q", "--hash", "-n", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		password, hash, ok := strings.Cut(line, "\t")
		require.True(t, ok, "line %q has no hash column", line)
		assert.Len(t, password, crypto.DefaultLength)

		match, err := crypto.VerifyPassword(password, hash)
		require.NoError(t, err)
		assert.True(t, match)
	}
}

func TestGenerateOptionsPolicy(t *testing.T) {
	p := generateOptions{length: 12, noDigits: true}.policy()
	assert.Equal(t, 12, p.Length)
	assert.Equal(t, crypto.NewClassSet(crypto.Uppercase, crypto.Lowercase, crypto.Symbol), p.Classes)
}
