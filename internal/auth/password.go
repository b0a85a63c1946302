package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted adaptive hash of the raw password. Only the
// digest is ever stored.
func HashPassword(raw string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether raw matches the stored digest.
func CheckPassword(raw, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}
