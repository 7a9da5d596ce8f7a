package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the work factor of the service this one replaced.
const BcryptCost = 10

// dummyHash is a valid bcrypt digest of an unguessable throwaway value. It is
// only ever compared against, never matched: BurnPasswordCheck uses it so the
// unknown-email login path costs roughly the same as a real comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword derives a salted one-way hash of the password. bcrypt generates
// a fresh random salt per call, so equal passwords never share a stored hash.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hashedPassword string, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// BurnPasswordCheck runs a bcrypt comparison that always fails. Called on the
// unknown-email login path so its timing resembles the wrong-password path.
func BurnPasswordCheck(password string) {
	bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
