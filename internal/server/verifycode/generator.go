package verifycode

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/common"
)

const (
	// codeBytes gives 128 bits of entropy, 22 base64url characters.
	codeBytes = 16
	// maxAttempts bounds regeneration on collision.
	maxAttempts = 5
)

// ExistsFunc reports whether a code is already assigned to a certificate.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generator produces unguessable, URL-safe codes. Codes are drawn from
// crypto/rand only and carry no information about the certificate.
type Generator struct {
	random func(size int) (string, error)
}

func NewGenerator() *Generator {
	return &Generator{random: common.RandomToken}
}

// Generate returns a fresh code that exists reports as unused.
func (g *Generator) Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code, err := g.random(codeBytes)
		if err != nil {
			return "", fmt.Errorf("generate verification code: %w", err)
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check verification code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", common.ErrVerificationCodeExhausted
}
