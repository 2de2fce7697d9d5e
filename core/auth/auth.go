// Package auth provides credential verification for the login flow.
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("missing username or password")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Verifier is any service that can check a username/password pair.
// A failed check is always ErrInvalidCredentials; implementations must not
// reveal which of the two fields was wrong.
type Verifier interface {
	Verify(username, password string) error
}

// StaticVerifier checks credentials against a fixed set of pairs, the
// placeholder for a real identity provider. Secrets are bcrypt hashes
// ("$2..." prefix) or plain values compared in constant time.
type StaticVerifier struct {
	users map[string]string
}

var _ Verifier = (*StaticVerifier)(nil)

func NewStaticVerifier(users map[string]string) *StaticVerifier {
	return &StaticVerifier{users: users}
}

func (v *StaticVerifier) Verify(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	secret, ok := v.users[username]
	if !ok {
		// burn a comparison so unknown usernames cost the same as bad passwords
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return ErrInvalidCredentials
	}
	if strings.HasPrefix(secret, "$2") {
		if bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
