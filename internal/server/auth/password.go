package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest of password. Two calls on the
// same plaintext produce different digests because the salt is random and
// embedded in the digest.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt digest hash.
// Any failure, including a malformed digest, is reported as false rather
// than an error so that callers have no secondary comparison path and no
// error-based oracle.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
