package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	req := &RegisterRequest{
		Username: "  citizen42 ",
		Email:    "Citizen@Example.COM",
		Password: "Str0ngpass",
	}

	require.NoError(t, ValidateRegisterRequest(req))
	require.Equal(t, "citizen42", req.Username)
	require.Equal(t, "citizen@example.com", req.Email)
}

func TestValidateRegisterRequestRejectsWeakPassword(t *testing.T) {
	req := &RegisterRequest{
		Username: "citizen42",
		Email:    "citizen@example.com",
		Password: "password",
	}

	require.Error(t, ValidateRegisterRequest(req))
}

func TestValidateRegisterRequestRejectsBadUsername(t *testing.T) {
	req := &RegisterRequest{
		Username: "a!",
		Email:    "citizen@example.com",
		Password: "Str0ngpass",
	}

	require.Error(t, ValidateRegisterRequest(req))
}

func TestValidateLoginRequest(t *testing.T) {
	req := &LoginRequest{Email: "citizen@example.com", Password: "x"}
	require.NoError(t, ValidateLoginRequest(req))

	req = &LoginRequest{Email: "not-an-email", Password: "x"}
	require.Error(t, ValidateLoginRequest(req))

	req = &LoginRequest{Email: "citizen@example.com"}
	require.Error(t, ValidateLoginRequest(req))
}
