package auth

import (
	"crypto/subtle"
	"errors"
)

// Role selects which credential set is authoritative for a check.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ErrUnauthorized is returned for any credential mismatch. The transport is
// expected to surface it with a Basic challenge.
var ErrUnauthorized = errors.New("incorrect username or password")

// CredentialStore holds the two fixed credential sets. The user set is a
// superset and must include every admin identity; membership is static for
// the process lifetime.
type CredentialStore struct {
	users  map[string]string
	admins map[string]string
}

func NewCredentialStore(users, admins map[string]string) *CredentialStore {
	return &CredentialStore{users: users, admins: admins}
}

// Validate checks an identity/secret pair against the set for role and
// returns the identity on success. When the identity is unknown, empty
// strings stand in for the stored pair so both comparisons still run and a
// missing user is indistinguishable from a wrong password.
func (c *CredentialStore) Validate(identity, secret string, role Role) (string, error) {
	set := c.users
	if role == RoleAdmin {
		set = c.admins
	}

	var storedName, storedSecret string
	if s, ok := set[identity]; ok {
		storedName = identity
		storedSecret = s
	}

	nameOK := subtle.ConstantTimeCompare([]byte(identity), []byte(storedName))
	secretOK := subtle.ConstantTimeCompare([]byte(secret), []byte(storedSecret))
	if nameOK&secretOK != 1 {
		return "", ErrUnauthorized
	}
	return identity, nil
}
