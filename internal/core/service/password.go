package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

// maxPasswordBytes is the most bcrypt will hash.
const maxPasswordBytes = 72

var errPasswordTooLong = domain.Validation("password must be at most 72 bytes")

func checkPasswordLength(password string) error {
	if len(password) > maxPasswordBytes {
		return errPasswordTooLong
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
