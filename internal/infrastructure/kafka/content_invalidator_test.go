package publisher

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	msgs   []domain.Message
}

func (p *recordingPublisher) Publish(topic string, msgs ...domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.msgs = append(p.msgs, msgs...)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.msgs)
}

func TestKafkaContentInvalidator_PublishesPaths(t *testing.T) {
	pub := &recordingPublisher{}
	inv := NewKafkaContentInvalidator(pub, "content-events")

	inv.Invalidate("/news", "/news/derby-day")

	require.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 5*time.Millisecond)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Equal(t, "content-events", pub.topics[0])
	var event ContentEvent
	require.NoError(t, json.Unmarshal(pub.msgs[0].Value, &event))
	assert.Equal(t, []string{"/news", "/news/derby-day"}, event.Paths)
	assert.Equal(t, "/news", string(pub.msgs[0].Key))
}

func TestKafkaContentInvalidator_IgnoresEmpty(t *testing.T) {
	pub := &recordingPublisher{}
	NewKafkaContentInvalidator(pub, "content-events").Invalidate()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, pub.count())
}
