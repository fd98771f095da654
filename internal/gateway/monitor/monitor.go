// Package monitor keeps a background view of the internal store's health.
// Request paths never consult it for retries; it only backs the gateway's
// readiness route and logs availability transitions.
package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const probeInterval = time.Second * 5

type HealthChecker interface {
	Health(ctx context.Context) error
}

type Monitor struct {
	store    HealthChecker
	interval time.Duration
	healthy  atomic.Bool
}

func New(store HealthChecker) *Monitor {
	return &Monitor{
		store:    store,
		interval: probeInterval,
	}
}

func (m *Monitor) Start(ctx context.Context) {
	zap.L().Info("store availability monitor started")
	go m.run(ctx)
}

func (m *Monitor) run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping availability monitor")
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	err := m.store.Health(ctx)
	ok := err == nil
	was := m.healthy.Swap(ok)
	if ok && !was {
		zap.L().Info("internal store is reachable")
	}
	if !ok && was {
		zap.L().Warn("internal store became unreachable", zap.Error(err))
	}
}

// Healthy reports the outcome of the latest probe.
func (m *Monitor) Healthy() bool {
	return m.healthy.Load()
}
