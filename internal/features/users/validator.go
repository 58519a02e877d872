package users

import (
	"errors"
	"strings"

	"github.com/publicvoice/api/internal/pkg/validator"
)

func ValidateRegisterRequest(req *RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !validator.IsValidUsername(req.Username) {
		return errors.New("username must be 3-20 characters (letters, digits, _ or -)")
	}

	if !validator.IsValidEmail(req.Email) {
		return errors.New("a valid email address is required")
	}

	if !validator.IsStrongPassword(req.Password) {
		return errors.New("password must be at least 8 characters with upper, lower and digit")
	}

	return nil
}

func ValidateLoginRequest(req *LoginRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !validator.IsValidEmail(req.Email) {
		return errors.New("a valid email address is required")
	}

	if req.Password == "" {
		return errors.New("password is required")
	}

	return nil
}
