package common

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomBytes returns size bytes from the operating system CSPRNG.
func RandomBytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// RandomToken returns size random bytes encoded as unpadded base64url, which
// is safe to use as a URL path segment.
func RandomToken(size int) (string, error) {
	b, err := RandomBytes(size)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
