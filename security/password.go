package security

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor used for all stored credentials.
const HashCost = 10

func Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), HashCost)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
