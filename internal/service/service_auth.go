package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// refreshLeeway is how long before expiry an access token is refreshed.
const refreshLeeway = time.Minute

// authService is the concrete implementation of AuthService.
// Credentials are checked by the auth provider; the service only keeps the
// resulting token grants in a SessionStore under opaque session ids.
type authService struct {
	// auth is the auth provider client.
	auth adapter.AuthAdapter

	// sessions keeps the grants between requests.
	sessions store.SessionStore

	// publisher announces sign in and sign out.
	publisher synchronizer.Publisher

	// confirmRedirect is where the sign up confirmation link points.
	confirmRedirect string

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. confirmRedirect is the absolute
// URL of the auth callback page.
func NewAuthService(auth adapter.AuthAdapter, sessions store.SessionStore, publisher synchronizer.Publisher, confirmRedirect string, logger *logger.Logger) AuthService {
	return &authService{
		auth:            auth,
		sessions:        sessions,
		publisher:       publisher,
		confirmRedirect: confirmRedirect,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

// SignIn exchanges credentials for a new session.
//
// Returns ErrInvalidCredentials for an empty email or password and for
// credentials the provider rejects, ErrEmailNotConfirmed for accounts pending
// confirmation.
func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.SignIn").Logger()

	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := a.auth.SignIn(ctx, creds)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("sign in rejected")
		return models.Session{}, mapAuthError(err)
	}

	return a.start(ctx, token)
}

func (a *authService) SignUp(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.SignUp").Logger()

	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	token, err := a.auth.SignUp(ctx, creds, a.confirmRedirect)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("sign up rejected")
		return nil, mapAuthError(err)
	}

	// confirmation pending
	if token.AccessToken == "" {
		log.Info().Str("user_id", token.User.ID).Msg("sign up pending email confirmation")
		return nil, nil
	}

	session, err := a.start(ctx, token)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *authService) ConfirmEmail(ctx context.Context, tokenHash, verifyType string) (models.Session, error) {
	if tokenHash == "" {
		return models.Session{}, ErrSessionExpired
	}
	if verifyType == "" {
		verifyType = "email"
	}

	token, err := a.auth.Verify(ctx, tokenHash, verifyType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ConfirmEmail").Msg("email confirmation failed")
		return models.Session{}, mapAuthError(err)
	}

	return a.start(ctx, token)
}

// Session returns the stored session, refreshed when its access token is
// about to expire. A session that cannot be refreshed is removed.
func (a *authService) Session(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Session").Logger()

	if sessionID == "" {
		return models.Session{}, ErrAuthRequired
	}

	session, err := a.sessions.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Session{}, ErrAuthRequired
	}
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if !session.Expired(a.now(), refreshLeeway) {
		return session, nil
	}

	if session.RefreshToken == "" {
		_ = a.sessions.Delete(ctx, sessionID)
		return models.Session{}, ErrAuthRequired
	}

	token, err := a.auth.Refresh(ctx, session.RefreshToken)
	if err != nil {
		log.Err(err).Str("user_id", session.UserID()).Msg("token refresh failed, session dropped")
		_ = a.sessions.Delete(ctx, sessionID)
		return models.Session{}, ErrAuthRequired
	}

	if token.User.ID == "" {
		token.User = session.User
	}
	refreshed := a.newSession(sessionID, token)
	refreshed.CreatedAt = session.CreatedAt
	if err = a.sessions.Save(ctx, refreshed); err != nil {
		log.Err(err).Msg("saving refreshed session failed")
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return refreshed, nil
}

// SignOut revokes the tokens at the provider (best effort) and forgets the
// session.
func (a *authService) SignOut(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx).With().Str("func", "*authService.SignOut").Logger()

	session, err := a.sessions.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if err = a.auth.SignOut(ctx, session.AccessToken); err != nil {
		log.Warn().Err(err).Str("user_id", session.UserID()).Msg("provider sign out failed")
	}

	if err = a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	a.publisher.Publish(ctx, synchronizer.SessionChanged{UserID: session.UserID(), SignedIn: false})
	return nil
}

func (a *authService) start(ctx context.Context, token models.AuthToken) (models.Session, error) {
	session := a.newSession(a.ids.Generate(), token)
	if err := a.sessions.Save(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.start").Msg("saving session failed")
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.publisher.Publish(ctx, synchronizer.SessionChanged{UserID: session.UserID(), SignedIn: true})
	return session, nil
}

// newSession builds a session from a grant. When the provider sent no expiry
// the exp claim of the access token is used.
func (a *authService) newSession(id string, token models.AuthToken) models.Session {
	if token.ExpiresAt == 0 && token.ExpiresIn == 0 {
		if claims, err := utils.ParseTokenClaims(token.AccessToken); err == nil && !claims.ExpiresAt.IsZero() {
			token.ExpiresAt = claims.ExpiresAt.Unix()
		}
	}
	session := models.NewSession(id, token, a.now().UTC())
	if session.User.ID == "" {
		if claims, err := utils.ParseTokenClaims(token.AccessToken); err == nil {
			session.User.ID = claims.Subject
			session.User.Email = claims.Email
		}
	}
	return session
}
