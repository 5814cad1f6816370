package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// MatchesAPIKeyHash compares a presented admin key against its bcrypt hash.
// An empty hash never matches.
func MatchesAPIKeyHash(apiKey, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)) == nil
}
