package service

import (
	"errors"

	"github.com/vaultpass/pwgen/internal/crypto"
	"github.com/vaultpass/pwgen/internal/model"
)

var ErrPasswordTooLong = errors.New("password must be at most 1024 characters")

// StrengthService scores passwords supplied by callers.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Score rates the password in req. An empty password scores zero.
func (s *StrengthService) Score(req model.StrengthRequest) (model.StrengthResponse, error) {
	if err := validateRequest(req, fieldErrors{
		"Password": {"max": ErrPasswordTooLong},
	}); err != nil {
		return model.StrengthResponse{}, err
	}

	return strengthResponse(crypto.Score(req.Password)), nil
}
