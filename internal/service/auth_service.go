package service

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

// Credentials is the one email/password pair the admin panel accepts.
type Credentials struct {
	Email    string
	Password string
}

// maxPasswordBytes is the most bcrypt will read from a key.
const maxPasswordBytes = 72

// AuthService checks the demo credentials and keeps the current session
// under KeyAuth. Stored users are only used to look up the profile.
type AuthService struct {
	store          *kvstore.Store
	email          string
	passwordLength int
	passwordHash   []byte
}

func NewAuthService(store *kvstore.Store, creds Credentials) (*AuthService, error) {
	if len(creds.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("admin password is longer than %d bytes", maxPasswordBytes)
	}

	// Şifreyi hashle
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash admin password: %w", err)
	}

	return &AuthService{
		store:          store,
		email:          creds.Email,
		passwordLength: len(creds.Password),
		passwordHash:   hash,
	}, nil
}

// Login returns the first stored user and opens a session when email and
// password match the configured pair. Otherwise it returns nil and changes nothing.
func (s *AuthService) Login(email, password string) *model.User {
	if email != s.email {
		return nil
	}
	// bcrypt only reads 72 bytes and repeats shorter keys, so a different
	// password can still match the hash. Equal length rules that out.
	if len(password) != s.passwordLength {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil
	}

	users := kvstore.GetList[model.User](s.store, KeyUsers)
	if len(users) == 0 {
		log.Printf("Login for %s accepted but no user is stored; run the seed first", email)
		return nil
	}

	user := users[0]
	kvstore.SetSingle(s.store, KeyAuth, user)
	return &user
}

// Logout removes the session key entirely
func (s *AuthService) Logout() {
	s.store.Remove(KeyAuth)
}

func (s *AuthService) GetCurrentUser() *model.User {
	return kvstore.GetSingle[model.User](s.store, KeyAuth)
}
