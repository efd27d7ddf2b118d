package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const filenameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var errNegativeLength = errors.New("length must be non-negative")

// RandomSuffix returns a cryptographically secure, unbiased string of the
// requested length, safe for use inside filenames.
func RandomSuffix(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(filenameAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = filenameAlphabet[position.Int64()]
	}

	return string(value), nil
}
