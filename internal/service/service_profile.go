package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

type profileService struct {
	profileRepository store.ProfileRepository

	now func() time.Time

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepository.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.GetProfile").Str("user_id", userID).Msg("get profile failed")
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (s *profileService) CreateProfile(ctx context.Context, userID string, fields models.ProfileUpdate) (*models.Profile, error) {
	now := s.now().UTC()
	profile := models.Profile{ID: userID, CreatedAt: now, UpdatedAt: &now}
	fields.Apply(&profile)

	created, err := s.profileRepository.CreateProfile(ctx, profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.CreateProfile").Str("user_id", userID).Msg("profile creation failed")
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.share(ctx, &created)
	return &created, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, fields models.ProfileUpdate) (*models.Profile, error) {
	profile, err := s.profileRepository.UpdateProfile(ctx, userID, fields, s.now().UTC())
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.UpdateProfile").Str("user_id", userID).Msg("profile update failed")
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.share(ctx, &profile)
	return &profile, nil
}

func (s *profileService) UpsertProfile(ctx context.Context, userID string, fields models.ProfileUpdate) (*models.Profile, error) {
	profile, err := s.profileRepository.UpsertProfile(ctx, userID, fields, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.UpsertProfile").Str("user_id", userID).Msg("profile upsert failed")
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.share(ctx, &profile)
	return &profile, nil
}

func (s *profileService) EnsureProfile(ctx context.Context, user models.User) (*models.Profile, error) {
	existing, err := s.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.share(ctx, existing)
		return existing, nil
	}

	defaults := models.ProfileUpdate{}
	if name := strings.TrimSpace(user.FullName()); name != "" {
		defaults.DisplayName = &name
	}
	if username := user.EmailLocalPart(); username != "" {
		defaults.Username = &username
	}

	created, err := s.CreateProfile(ctx, user.ID, defaults)
	if errors.Is(err, store.ErrConflict) {
		// created concurrently by another request of the same user
		profile, err := s.GetProfile(ctx, user.ID)
		if profile != nil {
			s.share(ctx, profile)
		}
		return profile, err
	}
	return created, err
}

// share pushes p into the caller's profile state, if the request has one.
func (s *profileService) share(ctx context.Context, p *models.Profile) {
	if state, ok := synchronizer.ProfileStateFrom(ctx); ok {
		state.Update(p)
	}
}
