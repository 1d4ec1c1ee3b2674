package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/pwgen/internal/crypto"
	"github.com/vaultpass/pwgen/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func newTestGeneratorService() *GeneratorService {
	svc := NewGeneratorService(crypto.NewMathSource(1), 0)
	svc.hashParams = crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	return svc
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	require.NoError(t, err)

	assert.Equal(t, crypto.DefaultLength, resp.Length)
	assert.Len(t, resp.Password, crypto.DefaultLength)
	assert.Equal(t, crypto.Score(resp.Password).Score, resp.Strength.Score)
	assert.Contains(t, []string{"strong", "excellent"}, resp.Strength.Level)
	assert.Empty(t, resp.Hash)
}

func TestGenerate_ConfiguredDefaultLength(t *testing.T) {
	svc := NewGeneratorService(crypto.NewMathSource(1), 24)
	resp, err := svc.Generate(model.GenerateRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Password, 24)
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 32, resp.Length)
	for _, c := range resp.Password {
		assert.Truef(t, (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'),
			"unexpected character %q in password with only uppercase+lowercase", c)
	}
}

func TestGenerate_NoCharacterTypesFallsBackToLowercase(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Password, 16)
	assert.Empty(t, strings.Trim(resp.Password, "abcdefghijklmnopqrstuvwxyz"))
}

func TestGenerate_LengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "too short", length: 3, wantErr: ErrLengthTooShort},
		{name: "negative", length: -1, wantErr: ErrLengthTooShort},
		{name: "too long", length: 65, wantErr: ErrLengthTooLong},
		{name: "minimum", length: 8},
		{name: "maximum", length: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestGeneratorService()
			resp, err := svc.Generate(model.GenerateRequest{Length: tt.length})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, resp.Password, tt.length)
		})
	}
}

func TestGenerate_WithHash(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Hash: true})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Hash)

	ok, err := crypto.VerifyPassword(resp.Password, resp.Hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPolicyFromRequest(t *testing.T) {
	policy := PolicyFromRequest(model.GenerateRequest{Numbers: boolPtr(false)}, 20)
	assert.Equal(t, 20, policy.Length)
	assert.Equal(t, crypto.NewClassSet(crypto.Uppercase, crypto.Lowercase, crypto.Symbol), policy.Classes)
}

func TestPolicy(t *testing.T) {
	p := newTestGeneratorService().Policy()
	assert.Equal(t, 8, p.MinLength)
	assert.Equal(t, 64, p.MaxLength)
	assert.Equal(t, crypto.DefaultLength, p.DefaultLength)
	assert.Equal(t, "0123456789", p.Alphabets["digit"])
	assert.Len(t, p.Alphabets, 4)
}
