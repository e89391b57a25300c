package db

import (
	"math/rand"
)

const (
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// TokenLength is the length of every issued session token.
	TokenLength = 200
)

// NewSessionToken draws a 200-character token uniformly from the
// alphanumeric alphabet. Tokens are not checked against existing rows;
// at 62^200 possibilities a collision is accepted as impossible in
// practice rather than guaranteed away by a constraint.
func NewSessionToken() string {
	buf := make([]byte, TokenLength)
	for i := range buf {
		buf[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(buf)
}
