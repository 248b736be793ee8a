package otpcode

import (
	"crypto/rand"
	"math/big"
)

// Length is the number of characters in a verification code.
const Length = 6

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// New generates a 6-character uppercase alphanumeric verification code
// from crypto/rand. No special characters — the code is typed by hand
// from an email.
func New() (string, error) {
	b := make([]byte, Length)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b), nil
}
