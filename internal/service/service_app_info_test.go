package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_NoVersionAnywhere_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	info := models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123")
	svc, err := NewAppInfoService(config.App{}, info, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ConfiguredVersionWins(t *testing.T) {
	info := models.NewAppBuildInfo("0.9.0", "", "")
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, info, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetVersion_CarriesBuildMetadata(t *testing.T) {
	info := models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, info, logger.Nop())
	require.NoError(t, err)

	got := svc.GetVersion(context.Background())
	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-01-01", Commit: "abc123"}, got)
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// GetAppVersion does not use ctx, so it must still return the version
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
