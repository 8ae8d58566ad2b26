package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n random alphanumeric characters from crypto/rand.
// Used for temporary passwords in the forgot-password flow.
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphanum)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("random: %w", err)
		}
		out[i] = alphanum[idx.Int64()]
	}
	return string(out), nil
}
