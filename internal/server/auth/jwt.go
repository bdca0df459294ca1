package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the operator name next to the registered claims. The
// operator name is what ends up in a certificate's voided-by field.
type Claims struct {
	jwt.RegisteredClaims
	Operator string `json:"operator"`
}

// GenerateToken signs an HS256 token for operator valid for validity.
func GenerateToken(operator string, secretKey []byte, validity time.Duration) (string, error) {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return "", common.ErrValidation
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Operator: operator,
	})

	return token.SignedString(secretKey)
}

// OperatorFromToken validates tokenString and returns the operator name.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// validation common.ErrInvalidToken.
func OperatorFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Operator == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Operator, nil
}
