package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quizcraft/internal/domain"
	"quizcraft/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const probeTimeout = 5 * time.Second

// HealthMonitor periodically probes the generation service. It is
// purely advisory: generation attempts are never gated on its status,
// they simply attempt and may fail on their own.
type HealthMonitor struct {
	client   domain.GenerationClient
	listener domain.StatusListener

	mu           sync.RWMutex
	status       domain.HealthStatus
	offlineShown bool

	scheduler *cron.Cron
}

// NewHealthMonitor creates a monitor for the given client. listener may
// be nil when no UI indicator is wired.
func NewHealthMonitor(client domain.GenerationClient, listener domain.StatusListener) *HealthMonitor {
	return &HealthMonitor{
		client:   client,
		listener: listener,
		// Until the first probe runs, assume the service is reachable.
		status: domain.HealthStatus{Available: true},
	}
}

// Start begins probing every interval. Calling Start on a running
// monitor is an error; Stop first.
func (m *HealthMonitor) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("health probe interval must be positive, got %s", interval)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scheduler != nil {
		return fmt.Errorf("health monitor already started")
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		m.Probe(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule health probe: %w", err)
	}

	m.scheduler = scheduler
	scheduler.Start()
	logger.Get().Info("Health monitor started", zap.Duration("interval", interval))
	return nil
}

// Stop halts the periodic probe. Safe to call when not started.
func (m *HealthMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scheduler == nil {
		return
	}
	m.scheduler.Stop()
	m.scheduler = nil
	logger.Get().Info("Health monitor stopped")
}

// Probe performs one availability check and updates the shared status.
// Listener notifications fire only on transitions, so repeated failing
// probes never stack duplicate offline indicators.
func (m *HealthMonitor) Probe(ctx context.Context) domain.HealthStatus {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := m.client.CheckHealth(probeCtx)
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.status = domain.HealthStatus{
			Available:     false,
			LastCheckedAt: now,
			Message:       err.Error(),
		}
		if !m.offlineShown {
			m.offlineShown = true
			logger.Get().Warn("Generation service is offline", zap.Error(err))
			if m.listener != nil {
				m.listener.ServiceOffline(m.status)
			}
		}
		return m.status
	}

	m.status = domain.HealthStatus{
		Available:     true,
		LastCheckedAt: now,
	}
	if m.offlineShown {
		m.offlineShown = false
		logger.Get().Info("Generation service is back online")
		if m.listener != nil {
			m.listener.ServiceOnline(m.status)
		}
	}
	return m.status
}

// Status returns the latest probe result without probing.
func (m *HealthMonitor) Status() domain.HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}
