package service

import (
	"golang.org/x/crypto/bcrypt"

	"hadirku_backend/internals/configs"
)

// HashPassword membuat hash bcrypt dari password plaintext.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), configs.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword mencocokkan plaintext dengan hash tersimpan.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
