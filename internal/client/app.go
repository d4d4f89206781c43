package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/tui"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// UI is the part of the terminal interface the app drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.Session, error)
	Browse(ctx context.Context, session models.Session, job service.ClientSessionJob, keepAlive time.Duration) (logout bool, err error)
}

type App struct {
	services  *service.Services
	ui        UI
	job       service.ClientSessionJob
	keepAlive time.Duration
	logger    *logger.Logger
}

func NewApp(services *service.Services, ui UI, keepAlive time.Duration, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}
	return &App{
		services:  services,
		ui:        ui,
		job:       service.NewClientSessionJob(services.AuthService),
		keepAlive: keepAlive,
		logger:    logger,
	}, nil
}

// Run signs the user in and browses the journal until they quit. Signing out
// or an expired session returns to the sign-in screen.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
		a.logger.Info().Str("user_id", session.UserID()).Msg("signed in")

		logout, err := a.ui.Browse(ctx, session, a.job, a.keepAlive)
		a.signOut(ctx, session)
		if err != nil {
			return fmt.Errorf("browse: %w", err)
		}
		if !logout {
			return nil
		}
	}
}

func (a *App) signOut(ctx context.Context, session models.Session) {
	ctx = utils.WithUser(ctx, session.UserID(), session.AccessToken)
	if err := a.services.AuthService.SignOut(ctx, session.ID); err != nil {
		a.logger.Err(err).Str("func", "*App.signOut").Msg("sign out failed")
	}
}
