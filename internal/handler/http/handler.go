package http

import (
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
)

type Handler struct {
	services *service.Services

	bus      *synchronizer.Bus
	profiles *synchronizer.ProfileStore

	validator validators.Validator
	pages     *pages

	cookieName    string
	cookieSecret  string
	sessionTTL    time.Duration
	secureCookies bool
	timeout       time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, bus *synchronizer.Bus, profiles *synchronizer.ProfileStore, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		bus:           bus,
		profiles:      profiles,
		validator:     validators.NewJournalValidator(),
		pages:         mustParsePages(),
		cookieName:    cfg.Session.CookieName,
		cookieSecret:  cfg.App.SessionSecret,
		sessionTTL:    cfg.Session.TTL,
		secureCookies: isHTTPS(cfg.App.PublicBaseURL),
		timeout:       cfg.Server.RequestTimeout,
		logger:        logger,
	}
}
