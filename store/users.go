// Package store persists demo login credentials in a flat JSON file, keyed by
// email. This mirrors the demo site's mock auth: plaintext passwords, no
// sessions, not for production use.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

var (
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("invalid password")
)

type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserStore struct {
	path string
	mu   sync.Mutex // serializes the read-modify-write over the file
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// Signup registers a new email/password pair.
func (s *UserStore) Signup(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := users[email]; ok {
		return ErrUserExists
	}

	users[email] = User{Email: email, Password: password}
	return s.save(users)
}

// Login checks the stored password for the email.
func (s *UserStore) Login(email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	u, ok := users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	if u.Password != password {
		return nil, ErrWrongPassword
	}
	return &u, nil
}

func (s *UserStore) load() (map[string]User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]User{}, nil
	}
	if err != nil {
		return nil, err
	}

	users := map[string]User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) save(users map[string]User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
