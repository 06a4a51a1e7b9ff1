package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives the bcrypt hash stored for an admin credential.
// Cost comes from AuthConfig so tests can run at bcrypt.MinCost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a login or change-password attempt against the
// stored admin hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
