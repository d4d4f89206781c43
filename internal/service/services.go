package service

import (
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

// AuthCallbackPath is the page the confirmation email links to.
const AuthCallbackPath = "/auth/callback"

type Services struct {
	AuthService    AuthService
	TripService    TripService
	EntryService   EntryService
	StorageService StorageService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, auth adapter.AuthAdapter, publisher synchronizer.Publisher, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	redirect := strings.TrimRight(cfg.App.PublicBaseURL, "/") + AuthCallbackPath

	return &Services{
		AuthService:    NewAuthService(auth, storages.SessionStore, publisher, redirect, logger),
		TripService:    NewTripValidationService().Wrap(NewTripService(storages.TripRepository, publisher, logger)),
		EntryService:   NewEntryValidationService().Wrap(NewEntryService(storages.EntryRepository, publisher, logger)),
		StorageService: NewStorageService(storages.ObjectStorage, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, logger),
		AppInfoService: appInfo,
	}, nil
}

// NewClientServices builds the services of the terminal client. Records go
// straight to the backend and the session lives in memory for the process
// lifetime.
func NewClientServices(baas adapter.BaaS, publisher synchronizer.Publisher, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(config.App{Version: cfg.Version}, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	sessions := store.NewMemorySessionStore(config.DefaultSessionTTL)

	return &Services{
		AuthService:    NewAuthService(baas, sessions, publisher, "", logger),
		TripService:    NewTripValidationService().Wrap(NewTripService(store.NewBaaSTripRepository(baas, logger), publisher, logger)),
		EntryService:   NewEntryValidationService().Wrap(NewEntryService(store.NewBaaSEntryRepository(baas, logger), publisher, logger)),
		StorageService: NewStorageService(store.NewBaaSObjectStorage(baas, logger), logger),
		ProfileService: NewProfileService(store.NewBaaSProfileRepository(baas, logger), logger),
		AppInfoService: appInfo,
	}, nil
}
