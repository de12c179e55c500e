package util

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently ignores bytes past 72; reject instead so two long
// passwords with the same prefix can't verify against each other.
const maxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	if len(password) > maxPasswordBytes {
		return "", errors.New("password exceeds 72 bytes")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
