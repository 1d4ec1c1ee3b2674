package service

import (
	"fmt"

	"github.com/vaultpass/pwgen/internal/crypto"
	"github.com/vaultpass/pwgen/internal/model"
)

var (
	ErrLengthTooShort = fmt.Errorf("password length must be at least %d", crypto.MinLength)
	ErrLengthTooLong  = fmt.Errorf("password length must be at most %d", crypto.MaxLength)
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	source        crypto.Source
	defaultLength int
	hashParams    crypto.HashParams
}

// NewGeneratorService creates a new GeneratorService drawing from src.
// A nil src uses crypto/rand; a defaultLength outside the accepted range
// falls back to crypto.DefaultLength.
func NewGeneratorService(src crypto.Source, defaultLength int) *GeneratorService {
	if src == nil {
		src = crypto.CryptoSource{}
	}
	if defaultLength < crypto.MinLength || defaultLength > crypto.MaxLength {
		defaultLength = crypto.DefaultLength
	}
	return &GeneratorService{
		source:        src,
		defaultLength: defaultLength,
		hashParams:    crypto.DefaultHashParams(),
	}
}

// Generate produces a password based on the given request, along with its
// strength and, if asked for, an Argon2id hash of it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := validateRequest(req, fieldErrors{
		"Length": {"min": ErrLengthTooShort, "max": ErrLengthTooLong},
	}); err != nil {
		return model.GenerateResponse{}, err
	}

	policy := PolicyFromRequest(req, s.defaultLength)
	password := crypto.Generate(policy, s.source)

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strengthResponse(crypto.Score(password)),
	}

	if req.Hash {
		hash, err := crypto.HashPasswordWithParams(password, s.hashParams)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing generated password: %w", err)
		}
		resp.Hash = hash
	}

	return resp, nil
}

// Policy describes what Generate accepts.
func (s *GeneratorService) Policy() model.PolicyResponse {
	alphabets := make(map[string]string, 4)
	for _, c := range crypto.AllClasses.Classes() {
		alphabets[c.String()] = c.Alphabet()
	}
	return model.PolicyResponse{
		MinLength:     crypto.MinLength,
		MaxLength:     crypto.MaxLength,
		DefaultLength: s.defaultLength,
		Alphabets:     alphabets,
	}
}

// PolicyFromRequest converts a request into a generation policy. Missing
// class toggles default to enabled; a zero length uses defaultLength.
func PolicyFromRequest(req model.GenerateRequest, defaultLength int) crypto.Policy {
	policy := crypto.DefaultPolicy()
	policy.Length = defaultLength
	if req.Length != 0 {
		policy.Length = req.Length
	}

	toggles := []struct {
		on    *bool
		class crypto.CharacterClass
	}{
		{req.Uppercase, crypto.Uppercase},
		{req.Lowercase, crypto.Lowercase},
		{req.Numbers, crypto.Digit},
		{req.Symbols, crypto.Symbol},
	}
	for _, tg := range toggles {
		if !boolOrDefault(tg.on, true) {
			policy.Classes = policy.Classes.Without(tg.class)
		}
	}

	return policy
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func strengthResponse(r crypto.StrengthResult) model.StrengthResponse {
	return model.StrengthResponse{
		Score:   r.Score,
		Level:   string(r.Level),
		Percent: r.Percent(),
	}
}
