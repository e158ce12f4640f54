package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/dtos"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(newTestDB(t), auth.NewManager("test-secret"), nil)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService(t)

	reg, err := svc.Register(&dtos.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.NotEqual(t, "s3cret", reg.User.Password)

	login, err := svc.Login(&dtos.LoginRequest{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	userID, err := svc.Tokens.Verify("Bearer " + login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, userID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(&dtos.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dtos.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
	})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(&dtos.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dtos.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.Login(&dtos.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	svc := newUserService(t)

	reg, err := svc.Register(&dtos.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	updated, err := svc.Update(reg.User.ID, &dtos.UpdateUserRequest{
		Bio:    "Go developer",
		Skills: []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Go developer", updated.Bio)
	assert.Equal(t, []string{"go"}, updated.Skills)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestDeleteUser(t *testing.T) {
	svc := newUserService(t)

	reg, err := svc.Register(&dtos.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(reg.User.ID))
	assert.ErrorIs(t, svc.Delete(reg.User.ID), apperr.ErrNotFound)

	_, err = svc.Get(reg.User.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
