package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repositories.NewUserRepository(newTestDB(t)), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(dto.RegisterRequest{Email: "hr@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "hunter22", user.Password)

	_, err = svc.Register(dto.RegisterRequest{Email: "HR@example.com", Password: "another1"})
	assert.True(t, utils.IsValidation(err))

	resp, err := svc.Login(dto.LoginRequest{Email: " HR@Example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Register(dto.RegisterRequest{Email: "hr@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Email: "hr@example.com", Password: "wrong-pass"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	svc := newAuthService(t)
	other := NewAuthService(nil, "other-secret", time.Hour)

	token, _, err := other.GenerateToken(models.User{Base: models.Base{ID: testUserID}, Email: "x@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestGetUserNotFound(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.GetUser("missing")
	assert.True(t, utils.IsNotFound(err))
}
