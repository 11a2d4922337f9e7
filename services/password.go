package services

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash of password. Salt and cost are
// embedded in the hash itself, so raising the cost only affects credentials
// created afterwards.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePasswords reports whether plainPassword matches storedHash.
func ComparePasswords(storedHash, plainPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plainPassword)) == nil
}
