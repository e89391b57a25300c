package db

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialScheme controls how credentials are stored and compared.
// The default plain scheme matches the external authentication contract
// exactly: what the client sent at signup is what must be sent at login.
type CredentialScheme interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

// PlainScheme stores credentials as-is. This is a known gap kept for
// parity with the original contract, not an endorsement.
type PlainScheme struct{}

func (PlainScheme) Hash(plain string) (string, error) {
	return plain, nil
}

func (PlainScheme) Verify(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

// BcryptScheme stores bcrypt digests instead of plaintext.
type BcryptScheme struct {
	Cost int
}

func (s BcryptScheme) Hash(plain string) (string, error) {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (s BcryptScheme) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// SchemeByName resolves the CREDENTIAL_SCHEME setting.
func SchemeByName(name string) (CredentialScheme, error) {
	switch name {
	case "", "plain":
		return PlainScheme{}, nil
	case "bcrypt":
		return BcryptScheme{}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme %q", name)
	}
}
