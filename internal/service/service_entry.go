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

// DefaultRecentLimit is the number of memories on the dashboard overview.
const DefaultRecentLimit = 3

type entryService struct {
	entryRepository store.EntryRepository
	publisher       synchronizer.Publisher

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewEntryService(entryRepository store.EntryRepository, publisher synchronizer.Publisher, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		publisher:       publisher,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

func (s *entryService) CreateEntry(ctx context.Context, tripID string, in models.EntryCreate) (*models.TripEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "*entryService.CreateEntry").Str("trip_id", tripID).Logger()

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	entry := models.TripEntry{
		ID:        s.ids.Generate(),
		CreatedAt: s.now().UTC(),
		TripID:    tripID,
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		Notes:     in.Notes,
		Location:  in.Location,
		EntryDate: in.EntryDate,
		Mood:      in.Mood,
		Weather:   in.Weather,
		ImageURLs: in.ImageURLs,
		Tags:      in.Tags,
	}
	if entry.Mood == "" {
		entry.Mood = models.MoodHappy
	}
	if entry.Notes == nil {
		entry.Notes = models.Notes{}
	}
	if entry.ImageURLs == nil {
		entry.ImageURLs = models.StringList{}
	}
	if entry.Tags == nil {
		entry.Tags = models.StringList{}
	}

	created, err := s.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Msg("memory creation failed")
		return nil, fmt.Errorf("create memory: %w", err)
	}

	s.publishChanged(ctx, created.ID, created.TripID, userID, &created)
	return &created, nil
}

func (s *entryService) GetEntry(ctx context.Context, id string) (*models.TripEntry, error) {
	entry, err := s.entryRepository.GetEntry(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.GetEntry").Str("entry_id", id).Msg("get memory failed")
		return nil, fmt.Errorf("get memory: %w", err)
	}
	return &entry, nil
}

func (s *entryService) ListTripEntries(ctx context.Context, tripID string) ([]models.TripEntry, error) {
	entries, err := s.entryRepository.ListTripEntries(ctx, tripID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.ListTripEntries").Str("trip_id", tripID).Msg("list memories failed")
		return []models.TripEntry{}, fmt.Errorf("list memories: %w", err)
	}
	if entries == nil {
		entries = []models.TripEntry{}
	}
	return entries, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, id string, update models.EntryUpdate) (*models.TripEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "*entryService.UpdateEntry").Str("entry_id", id).Logger()

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	update.UpdatedAt = s.now().UTC()
	entry, err := s.entryRepository.UpdateEntry(ctx, userID, id, update)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Msg("no memory matched the update")
		return nil, nil
	}
	if err != nil {
		log.Err(err).Msg("memory update failed")
		return nil, fmt.Errorf("update memory: %w", err)
	}

	s.publishChanged(ctx, entry.ID, entry.TripID, userID, &entry)
	return &entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, id string) (bool, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return false, err
	}

	deleted, err := s.entryRepository.DeleteEntry(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.DeleteEntry").Str("entry_id", id).Msg("memory deletion failed")
		return false, fmt.Errorf("delete memory: %w", err)
	}

	if deleted {
		s.publishChanged(ctx, id, "", userID, nil)
	}
	return deleted, nil
}

func (s *entryService) CountUserMemories(ctx context.Context, userID string) (int, error) {
	n, err := s.entryRepository.CountUserEntries(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.CountUserMemories").Str("user_id", userID).Msg("count memories failed")
		return 0, fmt.Errorf("count memories: %w", err)
	}
	return n, nil
}

func (s *entryService) RecentMemories(ctx context.Context, userID string, limit int) ([]models.RecentMemory, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.recent(ctx, userID, limit)
}

func (s *entryService) AllMemories(ctx context.Context, userID string) ([]models.RecentMemory, error) {
	return s.recent(ctx, userID, 0)
}

func (s *entryService) recent(ctx context.Context, userID string, limit int) ([]models.RecentMemory, error) {
	memories, err := s.entryRepository.RecentEntries(ctx, userID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.recent").Str("user_id", userID).Msg("recent memories failed")
		return []models.RecentMemory{}, fmt.Errorf("recent memories: %w", err)
	}
	if memories == nil {
		memories = []models.RecentMemory{}
	}
	return memories, nil
}

// publishChanged announces a memory write; entry is nil for deletions.
func (s *entryService) publishChanged(ctx context.Context, entryID, tripID, userID string, entry *models.TripEntry) {
	var payload *models.TripEntry
	if entry != nil {
		c := *entry
		payload = &c
	}
	s.publisher.Publish(ctx, synchronizer.MemoryChanged{EntryID: entryID, TripID: tripID, UserID: userID, Entry: payload})
}
