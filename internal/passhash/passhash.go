// Package passhash derives and verifies one-way password digests.
//
// Digests are bcrypt strings: self-describing, with the algorithm version,
// cost, and the random 22-character salt embedded in the digest itself, so
// no separate salt storage is needed.
package passhash

import "golang.org/x/crypto/bcrypt"

// cost matches the work factor the stored digests were created with.
const cost = 10

// Hash derives a salted digest for the given password. A fresh random salt
// is generated on every call.
func Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches the stored digest. The comparison
// is constant-time. A malformed digest is a verification failure, not a
// fault.
func Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
