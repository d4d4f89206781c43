package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/models"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type verifyRequest struct {
	Type      string `json:"type"`
	TokenHash string `json:"token_hash"`
}

// SignIn implements [AuthAdapter]. POST /auth/v1/token?grant_type=password.
func (h *baasAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.AuthToken, error) {
	return h.grant(ctx, "password", creds)
}

// Refresh implements [AuthAdapter]. POST /auth/v1/token?grant_type=refresh_token.
func (h *baasAdapter) Refresh(ctx context.Context, refreshToken string) (models.AuthToken, error) {
	return h.grant(ctx, "refresh_token", refreshRequest{RefreshToken: refreshToken})
}

func (h *baasAdapter) grant(ctx context.Context, grantType string, body any) (models.AuthToken, error) {
	var token models.AuthToken

	resp, err := h.tokenRequest(ctx, h.anonKey).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", grantType).
		SetBody(body).
		SetResult(&token).
		Post(authPath + "/token")
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("%s grant request: %w", grantType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "baasAdapter.grant").Str("grant_type", grantType).Err(err).Msg("token grant rejected")
		return models.AuthToken{}, err
	}
	if token.AccessToken == "" {
		return models.AuthToken{}, fmt.Errorf("%w: empty access token", ErrMalformedResponse)
	}

	return token, nil
}

// SignUp implements [AuthAdapter]. POST /auth/v1/signup. The provider answers
// with a grant when sign-ups are auto-confirmed, or with the bare user when
// an email confirmation is pending.
func (h *baasAdapter) SignUp(ctx context.Context, creds models.Credentials, redirectTo string) (models.AuthToken, error) {
	req := h.tokenRequest(ctx, h.anonKey).
		SetHeader("Content-Type", "application/json").
		SetBody(creds)
	if redirectTo != "" {
		req.SetQueryParam("redirect_to", redirectTo)
	}

	resp, err := req.Post(authPath + "/signup")
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthToken{}, err
	}

	var token models.AuthToken
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.AuthToken{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if token.AccessToken == "" {
		if err = json.Unmarshal(resp.Body(), &token.User); err != nil {
			return models.AuthToken{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	return token, nil
}

// GetUser implements [AuthAdapter]. GET /auth/v1/user.
func (h *baasAdapter) GetUser(ctx context.Context, accessToken string) (models.User, error) {
	var user models.User

	resp, err := h.tokenRequest(ctx, accessToken).
		SetResult(&user).
		Get(authPath + "/user")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// SignOut implements [AuthAdapter]. POST /auth/v1/logout.
func (h *baasAdapter) SignOut(ctx context.Context, accessToken string) error {
	resp, err := h.tokenRequest(ctx, accessToken).Post(authPath + "/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Verify implements [AuthAdapter]. POST /auth/v1/verify.
func (h *baasAdapter) Verify(ctx context.Context, tokenHash, verifyType string) (models.AuthToken, error) {
	var token models.AuthToken

	resp, err := h.tokenRequest(ctx, h.anonKey).
		SetHeader("Content-Type", "application/json").
		SetBody(verifyRequest{Type: verifyType, TokenHash: tokenHash}).
		SetResult(&token).
		Post(authPath + "/verify")
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthToken{}, err
	}

	return token, nil
}
