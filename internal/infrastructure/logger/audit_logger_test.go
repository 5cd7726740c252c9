package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/brigatacurvasud/bcs-service/internal/config"
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuditRepo struct {
	err     error
	entries []*domain.AuditLog
}

func (r *stubAuditRepo) CreateAuditLog(_ context.Context, entry *domain.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) ListAuditLogs(context.Context, domain.AuditLogFilter) ([]*domain.AuditLog, int64, error) {
	return nil, 0, nil
}

type countingMetrics struct {
	failures map[string]int
}

func (m *countingMetrics) RecordAuditFailure(action string) {
	if m.failures == nil {
		m.failures = map[string]int{}
	}
	m.failures[action]++
}

func TestAuditLogger_FillsIDAndTimestamp(t *testing.T) {
	repo := &stubAuditRepo{}
	l := NewAuditLogger(repo, nil)

	l.Record(context.Background(), domain.AuditLog{ActorID: "a1", Action: "ARTICLE_CREATED", TargetType: "ARTICLE", TargetID: "x"})

	require.Len(t, repo.entries, 1)
	assert.NotEmpty(t, repo.entries[0].ID)
	assert.False(t, repo.entries[0].CreatedAt.IsZero())
}

func TestAuditLogger_SwallowsFailure(t *testing.T) {
	var buf bytes.Buffer
	setup(&buf, config.LogConfig{LogLevel: "info", LogFormat: "json"})

	m := &countingMetrics{}
	l := NewAuditLogger(&stubAuditRepo{err: errors.New("db down")}, m)

	assert.NotPanics(t, func() {
		l.Record(context.Background(), domain.AuditLog{ActorID: "a1", Action: "ORDER_STATUS_UPDATED", TargetType: "ORDER", TargetID: "o1"})
	})
	assert.Equal(t, 1, m.failures["ORDER_STATUS_UPDATED"])
	assert.Contains(t, buf.String(), "failed to record audit log")
	assert.Contains(t, buf.String(), "db down")
}
