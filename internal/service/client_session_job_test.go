// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/models"
)

// spyAuthService считает вызовы Session и возвращает заданную ошибку.
type spyAuthService struct {
	AuthService

	calls atomic.Int64
	err   atomic.Value
}

func (s *spyAuthService) Session(_ context.Context, sessionID string) (models.Session, error) {
	s.calls.Add(1)
	if err, ok := s.err.Load().(error); ok && err != nil {
		return models.Session{}, err
	}
	return models.Session{ID: sessionID}, nil
}

// ── NewClientSessionJob ──────────────────────────────────────────────────────

func TestNewClientSessionJob_ReturnsInterface(t *testing.T) {
	job := NewClientSessionJob(&spyAuthService{})
	require.NotNil(t, job)

	var _ ClientSessionJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSessionJob_Start_ChecksSession(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)

	var refreshed atomic.Int64
	// Интервал 10ms - за 55ms должно быть ~5 тиков
	job.Start(context.Background(), "s1", 10*time.Millisecond, func(s models.Session) {
		assert.Equal(t, "s1", s.ID)
		refreshed.Add(1)
	}, nil)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Equal(t, spy.calls.Load(), refreshed.Load())
}

func TestClientSessionJob_Expired_StopsLoop(t *testing.T) {
	spy := &spyAuthService{}
	spy.err.Store(ErrAuthRequired)
	job := NewClientSessionJob(spy)

	expired := make(chan struct{}, 2)
	job.Start(context.Background(), "s1", 5*time.Millisecond, nil, func() { expired <- struct{}{} })

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("onExpired was not called")
	}
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	// после истечения сессии проверок больше нет
	assert.Equal(t, int64(1), spy.calls.Load())
	assert.Len(t, expired, 0)
}

func TestClientSessionJob_TransientError_Retries(t *testing.T) {
	spy := &spyAuthService{}
	spy.err.Store(errors.New("network down"))
	job := NewClientSessionJob(spy)

	var expired atomic.Bool
	job.Start(context.Background(), "s1", 5*time.Millisecond, nil, func() { expired.Store(true) })
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
	assert.False(t, expired.Load())
}

func TestClientSessionJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)

	job.Start(context.Background(), "s1", 10*time.Millisecond, nil, nil)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientSessionJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSessionJob(&spyAuthService{})

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSessionJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)

	// interval <= 0 → дефолт 30 секунд, за 20ms вызовов быть не должно
	job.Start(context.Background(), "s1", 0, nil, nil)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientSessionJob_Restart_ReplacesRunningJob(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)

	job.Start(context.Background(), "s1", time.Hour, nil, nil)
	job.Start(context.Background(), "s1", 5*time.Millisecond, nil, nil)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}
