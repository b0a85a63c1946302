// Package auth implements the session token issuer and the credential
// hashing primitives. Tokens are self-verifying HS256 JWTs carrying the
// subject user ID and an absolute expiry; validation never touches the
// database.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mzaytsev/taskmirror/internal/domain"
)

// Claims includes the registered claims plus the subject user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature and expiry and returns the subject
// user ID. Every failure mode (malformed token, bad signature, expiry, missing
// subject) collapses into ErrUnauthenticated so callers cannot distinguish
// which sub-case occurred.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", domain.ErrUnauthenticated
	}

	if !token.Valid || claims.UserID == "" {
		return "", domain.ErrUnauthenticated
	}

	return claims.UserID, nil
}
