package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/bizit/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeFlagger struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
}

func (f *fakeFlagger) FlagLate(ctx context.Context, now time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	return len(f.calls), f.err
}

func (f *fakeFlagger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestFlagLateShipmentsUsesClock(t *testing.T) {
	flagger := &fakeFlagger{}
	s := NewScheduler("@daily", flagger, nil)
	fixed := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.flagLateShipments()

	require.Equal(t, 1, flagger.count())
	assert.Equal(t, fixed, flagger.calls[0])
}

func TestFlagLateShipmentsLogsErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	flagger := &fakeFlagger{err: errors.New("banco indisponível")}
	s := NewScheduler("@daily", flagger, logger.NewLogger(zap.New(core)))

	s.flagLateShipments()

	assert.Equal(t, 1, logs.FilterMessage("falha ao marcar remessas atrasadas").Len())
}

func TestStartRejectsInvalidExpression(t *testing.T) {
	s := NewScheduler("toda segunda", &fakeFlagger{}, nil)
	assert.Error(t, s.Start())
}

func TestStartRunsImmediately(t *testing.T) {
	flagger := &fakeFlagger{}
	s := NewScheduler("@hourly", flagger, nil)
	require.NoError(t, s.Start())
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return flagger.count() >= 1 }, time.Second, 10*time.Millisecond)
}

type blockingFlagger struct {
	started  chan struct{}
	release  chan struct{}
	finished chan struct{}
}

func (f *blockingFlagger) FlagLate(ctx context.Context, now time.Time) (int, error) {
	close(f.started)
	<-f.release
	close(f.finished)
	return 0, nil
}

func TestStopWaitsForStartupRun(t *testing.T) {
	flagger := &blockingFlagger{
		started:  make(chan struct{}),
		release:  make(chan struct{}),
		finished: make(chan struct{}),
	}
	s := NewScheduler("@hourly", flagger, nil)
	require.NoError(t, s.Start())
	<-flagger.started

	stopped := make(chan struct{})
	go func() {
		s.Stop(context.Background())
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop retornou antes da verificação da partida terminar")
	case <-time.After(50 * time.Millisecond):
	}

	close(flagger.release)
	<-stopped
	select {
	case <-flagger.finished:
	default:
		t.Fatal("verificação da partida não terminou")
	}
}
