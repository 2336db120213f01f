package helpers

import (
	"crypto/rand"
	"math/big"
)

// GeneratedPasswordLength is the length of temporary passwords created
// during registration.
const GeneratedPasswordLength = 25

// Character classes for generated passwords. Upper case is excluded on
// purpose: the password is only ever typed from a reset email.
const (
	passwordLower   = "abcdefghijklmnopqrstuvwxyz"
	passwordDigits  = "0123456789"
	passwordSpecial = "!@#$%^&*()-_=+"
)

const passwordAlphabet = passwordLower + passwordDigits + passwordSpecial

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func randChar(set string) (byte, error) {
	i, err := randIndex(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// GeneratePassword returns a random password of GeneratedPasswordLength
// characters containing at least one lower-case letter, one digit and one
// special character. Indices come from crypto/rand.Int, so no character is
// favored over another.
func GeneratePassword() (string, error) {
	out := make([]byte, 0, GeneratedPasswordLength)
	for _, set := range []string{passwordLower, passwordDigits, passwordSpecial} {
		c, err := randChar(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < GeneratedPasswordLength {
		c, err := randChar(passwordAlphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	// Shuffle so the guaranteed class characters are not always first.
	for i := len(out) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
