// Package secret generates random bootstrap credentials for a new project.
package secret

import (
	"crypto/rand"
	"math/big"
)

// alphabet is the 62-symbol alphanumeric character set secrets are drawn from.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a string of exactly length characters, each drawn
// uniformly (with replacement) from the alphanumeric alphabet. These are
// bootstrap secrets meant to be rotated, not long-lived key material.
// length must be positive.
func Generate(length int) string {
	if length <= 0 {
		panic("secret: length must be positive")
	}

	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// The platform entropy source failing is not recoverable.
			panic("secret: " + err.Error())
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}
