package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *UserStore {
	t.Helper()
	return NewUserStore(filepath.Join(t.TempDir(), "users.json"))
}

func TestSignupAndLogin(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Signup("asha@example.com", "Password@123"))

	user, err := s.Login("asha@example.com", "Password@123")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Signup("asha@example.com", "Password@123"))
	err := s.Signup("asha@example.com", "other")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginUnknownUser(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Signup("asha@example.com", "Password@123"))
	_, err := s.Login("asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestCredentialsSurviveRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	first := NewUserStore(path)
	require.NoError(t, first.Signup("asha@example.com", "Password@123"))

	second := NewUserStore(path)
	user, err := second.Login("asha@example.com", "Password@123")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
}

func TestFileShapeIsEmailKeyed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewUserStore(path)
	require.NoError(t, s.Signup("asha@example.com", "Password@123"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var users map[string]User
	require.NoError(t, json.Unmarshal(data, &users))
	assert.Equal(t, User{Email: "asha@example.com", Password: "Password@123"}, users["asha@example.com"])
}
