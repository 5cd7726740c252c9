package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	"github.com/brigatacurvasud/bcs-service/internal/usecase"
)

const (
	healthProbeInterval = 10 * time.Second
	lowStockInterval    = time.Minute
	lowStockScanLimit   = 1000
)

type HealthSetter interface {
	SetServing(serving bool)
}

type BackgroundTasks struct {
	Ping    func(ctx context.Context) error
	Health  HealthSetter
	Catalog domain.CatalogRepository
	Metrics *metrics.StoreMetrics
}

func NewBackgroundTasks(ping func(ctx context.Context) error, health HealthSetter, catalog domain.CatalogRepository, m *metrics.StoreMetrics) *BackgroundTasks {
	return &BackgroundTasks{
		Ping:    ping,
		Health:  health,
		Catalog: catalog,
		Metrics: m,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.every(ctx, healthProbeInterval, bt.probeHealth)
	go bt.every(ctx, lowStockInterval, bt.refreshLowStock)
}

// every runs fn once immediately and then on each tick until ctx is done.
func (bt *BackgroundTasks) every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	fn(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (bt *BackgroundTasks) probeHealth(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := bt.Ping(ctx); err != nil {
		slog.Error("database ping failed", "error", err)
		bt.Health.SetServing(false)
		return
	}
	bt.Health.SetServing(true)
}

func (bt *BackgroundTasks) refreshLowStock(ctx context.Context) {
	variants, err := bt.Catalog.ListLowStockVariants(ctx, usecase.LowStockThreshold, lowStockScanLimit)
	if err != nil {
		slog.Error("low stock scan failed", "error", err)
		return
	}
	bt.Metrics.SetLowStockVariants(len(variants))
	if len(variants) > 0 {
		slog.Debug("low stock variants", "count", len(variants))
	}
}
