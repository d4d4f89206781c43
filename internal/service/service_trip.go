package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

type tripService struct {
	tripRepository store.TripRepository
	publisher      synchronizer.Publisher

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewTripService(tripRepository store.TripRepository, publisher synchronizer.Publisher, logger *logger.Logger) TripService {
	return &tripService{
		tripRepository: tripRepository,
		publisher:      publisher,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// callerID returns the signed-in user of ctx or ErrAuthRequired.
func callerID(ctx context.Context) (string, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", ErrAuthRequired
	}
	return userID, nil
}

func (s *tripService) CreateTrip(ctx context.Context, in models.TripCreate) (*models.Trip, error) {
	log := logger.FromContext(ctx).With().Str("func", "*tripService.CreateTrip").Logger()

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	trip := models.Trip{
		ID:            s.ids.Generate(),
		CreatedAt:     s.now().UTC(),
		UserID:        userID,
		Title:         in.Title,
		Description:   in.Description,
		Destination:   in.Destination,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsPublic:      true, // every trip is listed on the public profile
		CoverImageURL: in.CoverImageURL,
		Status:        in.Status,
		Tags:          in.Tags,
		Budget:        in.Budget,
		Currency:      in.Currency,
	}
	if trip.Status == "" {
		trip.Status = models.TripCompleted
	}
	if trip.Tags == nil {
		trip.Tags = models.StringList{}
	}

	created, err := s.tripRepository.CreateTrip(ctx, trip)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("trip creation failed")
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.publisher.Publish(ctx, synchronizer.TripChanged{TripID: created.ID, UserID: userID})
	return &created, nil
}

func (s *tripService) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	trip, err := s.tripRepository.GetTrip(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tripService.GetTrip").Str("trip_id", id).Msg("get trip failed")
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &trip, nil
}

func (s *tripService) ListUserTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	return s.listTrips(ctx, userID, false)
}

func (s *tripService) ListPublicTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	return s.listTrips(ctx, userID, true)
}

func (s *tripService) listTrips(ctx context.Context, userID string, publicOnly bool) ([]models.Trip, error) {
	if userID == "" {
		var err error
		if userID, err = callerID(ctx); err != nil {
			return nil, err
		}
	}

	trips, err := s.tripRepository.ListUserTrips(ctx, userID, publicOnly)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tripService.listTrips").Str("user_id", userID).Msg("list trips failed")
		return []models.Trip{}, fmt.Errorf("list trips: %w", err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, id string, update models.TripUpdate) (*models.Trip, error) {
	log := logger.FromContext(ctx).With().Str("func", "*tripService.UpdateTrip").Str("trip_id", id).Logger()

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	update.UpdatedAt = s.now().UTC()
	trip, err := s.tripRepository.UpdateTrip(ctx, userID, id, update)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Msg("no trip matched the update")
		return nil, nil
	}
	if err != nil {
		log.Err(err).Msg("trip update failed")
		return nil, fmt.Errorf("update trip: %w", err)
	}

	s.publisher.Publish(ctx, synchronizer.TripChanged{TripID: trip.ID, UserID: userID})
	return &trip, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, id string) (bool, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return false, err
	}

	deleted, err := s.tripRepository.DeleteTrip(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tripService.DeleteTrip").Str("trip_id", id).Msg("trip deletion failed")
		return false, fmt.Errorf("delete trip: %w", err)
	}

	if deleted {
		s.publisher.Publish(ctx, synchronizer.TripChanged{TripID: id, UserID: userID})
	}
	return deleted, nil
}

func (s *tripService) CountUserTrips(ctx context.Context, userID string) (int, error) {
	n, err := s.tripRepository.CountUserTrips(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tripService.CountUserTrips").Str("user_id", userID).Msg("count trips failed")
		return 0, fmt.Errorf("count trips: %w", err)
	}
	return n, nil
}
