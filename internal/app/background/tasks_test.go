package background

import (
	"context"
	"errors"
	"testing"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	"github.com/brigatacurvasud/bcs-service/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type recordingHealth struct {
	states []bool
}

func (h *recordingHealth) SetServing(serving bool) {
	h.states = append(h.states, serving)
}

type lowStockCatalog struct {
	domain.CatalogRepository
	threshold int
	variants  []*domain.ProductVariant
}

func (c *lowStockCatalog) ListLowStockVariants(_ context.Context, threshold, _ int) ([]*domain.ProductVariant, error) {
	c.threshold = threshold
	return c.variants, nil
}

func TestProbeHealth(t *testing.T) {
	health := &recordingHealth{}
	pingErr := errors.New("connection refused")
	bt := NewBackgroundTasks(func(context.Context) error { return pingErr }, health, nil, nil)

	bt.probeHealth(context.Background())
	pingErr = nil
	bt.probeHealth(context.Background())

	assert.Equal(t, []bool{false, true}, health.states)
}

func TestRefreshLowStock(t *testing.T) {
	m := metrics.NewStoreMetrics(prometheus.NewRegistry())
	catalog := &lowStockCatalog{variants: []*domain.ProductVariant{{ID: "v1", Stock: 2}, {ID: "v2", Stock: 0}}}
	bt := NewBackgroundTasks(nil, nil, catalog, m)

	bt.refreshLowStock(context.Background())

	assert.Equal(t, usecase.LowStockThreshold, catalog.threshold)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.LowStockVariants))
}
