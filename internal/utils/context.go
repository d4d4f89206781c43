// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, access token
// inspection, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the signed-in user identifier
	// (the backend's uuid string) in the context.
	UserIDCtxKey = contextKey("userID")

	// AccessTokenCtxKey is the key used to store the caller's access token.
	// Backend adapters forward it as the bearer token so row-level rules
	// run as that user.
	AccessTokenCtxKey = contextKey("accessToken")
)

// WithUser returns a copy of ctx carrying the user id and access token.
//
// Example usage:
//
//	ctx = utils.WithUser(ctx, session.UserID(), session.AccessToken)
func WithUser(ctx context.Context, userID, accessToken string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, AccessTokenCtxKey, accessToken)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  - value is found, is a string and is not empty
//   - ok == false - value is missing, empty or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetAccessTokenFromContext retrieves the caller's access token.
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok && token != ""
}
