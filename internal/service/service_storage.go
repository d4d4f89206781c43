// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// avatarCacheControl is the cache lifetime, in seconds, of uploaded avatars.
const avatarCacheControl = "3600"

// entryPhotoPrefix is the folder holding memory photos inside the trip image
// bucket.
const entryPhotoPrefix = "trip-entries"

type storageService struct {
	objects   store.ObjectStorage
	validator validators.Validator

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewStorageService(objects store.ObjectStorage, logger *logger.Logger) StorageService {
	return &storageService{
		objects:   objects,
		validator: validators.NewJournalValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *storageService) UploadAvatar(ctx context.Context, userID string, file models.ImageFile) models.UploadResult {
	log := logger.FromContext(ctx).With().Str("func", "*storageService.UploadAvatar").Str("user_id", userID).Logger()

	if err := s.validator.Validate(ctx, file); err != nil {
		msg, ok := validators.Message(err)
		if !ok {
			msg = app.MsgUnexpectedError
		}
		return models.UploadResult{Error: msg}
	}

	// {user}/{user}-{millis}.{ext}
	objectPath := fmt.Sprintf("%s/%s-%d.%s", userID, userID, s.now().UnixMilli(), file.Ext())

	err := s.objects.Upload(ctx, models.AvatarBucket, objectPath, file.Body, file.ContentType,
		models.UploadOptions{CacheControl: avatarCacheControl, Upsert: false})
	if err != nil {
		log.Err(err).Str("path", objectPath).Msg("avatar upload failed")
		msg := backendMessage(err)
		if msg == "" {
			msg = app.MsgUnexpectedError
		}
		return models.UploadResult{Error: msg}
	}

	return models.UploadResult{Success: true, URL: s.objects.PublicURL(models.AvatarBucket, objectPath)}
}

func (s *storageService) UploadEntryPhotos(ctx context.Context, tripID string, existing int, files []models.ImageFile) ([]string, error) {
	log := logger.FromContext(ctx).With().Str("func", "*storageService.UploadEntryPhotos").Str("trip_id", tripID).Logger()

	if err := s.validator.Validate(ctx, validators.ImageBatch{Existing: existing, Files: files}); err != nil {
		return nil, err
	}

	// sequential: the first photo becomes the cover
	urls := make([]string, 0, len(files))
	for _, file := range files {
		objectPath := fmt.Sprintf("%s/%s/%s.%s", entryPhotoPrefix, tripID, s.ids.Generate(), file.Ext())

		if err := s.objects.Upload(ctx, models.TripImageBucket, objectPath, file.Body, file.ContentType, models.UploadOptions{}); err != nil {
			log.Err(err).Str("file", file.Name).Int("uploaded", len(urls)).Msg("photo upload failed, batch aborted")
			return nil, &uploadError{name: file.Name, cause: err}
		}
		urls = append(urls, s.objects.PublicURL(models.TripImageBucket, objectPath))
	}

	return urls, nil
}

func (s *storageService) DeleteAvatar(ctx context.Context, userID, fileName string) bool {
	if fileName == "" {
		return false
	}

	if err := s.objects.Remove(ctx, models.AvatarBucket, []string{userID + "/" + fileName}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storageService.DeleteAvatar").Str("user_id", userID).Str("file", fileName).Msg("avatar removal failed")
		return false
	}
	return true
}

// AvatarFileName returns the object name of an avatar URL produced by
// UploadAvatar for userID, or an empty string for foreign URLs.
func AvatarFileName(userID, avatarURL string) string {
	if userID == "" || !strings.Contains(avatarURL, "/"+userID+"/") {
		return ""
	}
	name := path.Base(strings.SplitN(avatarURL, "?", 2)[0])
	if name == "." || name == "/" {
		return ""
	}
	return name
}
