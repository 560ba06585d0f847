package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword encodes the password with argon2id. The encoded form
// embeds the salt and parameters, so verification needs no shared
// configuration.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the stored encoded
// hash. A mismatch is (false, nil); an error means the hash itself is
// malformed.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
