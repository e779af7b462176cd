// Package auth implements stateless session tokens and password hashing.
// Tokens are HS256 JWTs carrying the subject email and role; there is no
// revocation list, validity is signature plus expiry only.
package auth

import (
	"errors"
	"time"

	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered claim set with the account role. The
// subject claim holds the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateToken issues a signed token for the given identity, expiring
// validityDuration from now.
func GenerateToken(email string, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Role: string(role),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded
// identity. Verification is all-or-nothing: any defect yields
// common.ErrInvalidToken (or common.ErrTokenExpired for a valid signature
// whose expiry has passed).
func ParseToken(tokenString string, secretKey []byte) (string, models.Role, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", common.ErrTokenExpired
		}
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", "", common.ErrInvalidToken
	}

	role := models.Role(claims.Role)
	if !role.Valid() {
		return "", "", common.ErrInvalidToken
	}

	return claims.Subject, role, nil
}
