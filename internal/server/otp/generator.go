// Package otp generates one-time verification codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

var codeSpace = big.NewInt(1000000)

// GenerateCode returns a uniformly random, zero-padded numeric code of
// CodeLength digits, drawn from crypto/rand.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("otp generation error: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n), nil
}
