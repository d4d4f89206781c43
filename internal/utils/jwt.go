package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when an access token cannot be decoded or has
// no subject.
var ErrInvalidToken = errors.New("invalid access token")

// TokenClaims are the parts of a backend access token the web server needs.
// Signatures are verified by the backend on every call, so the server only
// decodes the payload.
type TokenClaims struct {
	// Subject is the user id.
	Subject string
	// ExpiresAt is the token expiry, zero when the token has no exp claim.
	ExpiresAt time.Time
	// Email is taken from the "email" claim when present.
	Email string
}

// ParseBearerToken extracts the token from an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseTokenClaims decodes tokenString without verifying its signature.
//
// Example usage:
//
//	claims, err := utils.ParseTokenClaims(session.AccessToken)
//	if err == nil && time.Until(claims.ExpiresAt) < time.Minute {
//	    // refresh
//	}
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return TokenClaims{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	result := TokenClaims{Subject: sub}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		result.ExpiresAt = exp.Time
	}
	if email, ok := claims["email"].(string); ok {
		result.Email = email
	}

	return result, nil
}

// ParseUserIDFromJWT returns the subject of tokenString without verifying
// its signature.
func ParseUserIDFromJWT(tokenString string) (string, error) {
	claims, err := ParseTokenClaims(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
