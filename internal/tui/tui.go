// Package tui is the terminal journal browser built on Bubble Tea.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

// eventBuffer bounds the change events waiting for the screen to redraw.
const eventBuffer = 16

type TUI struct {
	services  *service.Services
	bus       *synchronizer.Bus
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions are appended in tests to run without a terminal.
	programOptions []tea.ProgramOption
}

func New(services *service.Services, bus *synchronizer.Bus, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:       services,
		bus:            bus,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// LoginFlow shows the sign-in screen until a session is obtained. It returns
// ErrUserQuit when the user leaves.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginModel(ctx, t.services.AuthService, t.buildInfo)
	finalModel, err := tea.NewProgram(model, t.programOptions...).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return models.Session{}, ErrUserQuit
	}
	return result.session, nil
}

// Browse runs the journal browser for session. logout is true when the user
// signed out or the session expired. The keep-alive job runs for as long as
// the browser does.
func (t *TUI) Browse(ctx context.Context, session models.Session, job service.ClientSessionJob, keepAlive time.Duration) (logout bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newBrowserModel(ctx, t.services, session, t.buildInfo), t.programOptions...)

	sub := t.bus.Subscribe(eventBuffer, synchronizer.ForUser(session.UserID()))
	defer sub.Close()
	go func() {
		for event := range sub.Events() {
			p.Send(busEventMsg{event: event})
		}
	}()

	job.Start(ctx, session.ID,
		keepAlive,
		func(s models.Session) { p.Send(sessionRefreshedMsg{session: s}) },
		func() { p.Send(sessionExpiredMsg{}) },
	)
	defer job.Stop()

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.expired {
		t.logger.Info().Str("user_id", session.UserID()).Msg("session expired, signing in again")
	}
	if result.quitByUser {
		return false, nil
	}
	return result.logout, nil
}
