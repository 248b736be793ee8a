package hash

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of plaintext at the default cost.
// Used for both user passwords and OTP codes — neither is ever stored in clear.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plaintext matches the bcrypt hash.
// bcrypt's comparison is constant-time with respect to the hashed value.
func Compare(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
