package metrics

import (
	"sync"
	"time"
)

// Metrics is a process-local counter set surfaced on the metrics endpoint.
// Event-derived counters are fed by the session-events consumer; failure
// counters are incremented at the call site.
type Metrics struct {
	mu sync.RWMutex

	WebhooksProcessed       int64
	WebhooksIgnored         int64
	SessionsSegmented       int64
	ConversationsStarted    int64
	InterviewsCompleted     int64
	TranscriptFetchFailures int64
	LastUpdateTime          time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementWebhooksProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WebhooksProcessed++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementWebhooksIgnored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WebhooksIgnored++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSessionsSegmented() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsSegmented++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementConversationsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConversationsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InterviewsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementTranscriptFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranscriptFetchFailures++
	m.LastUpdateTime = time.Now()
}

type Snapshot struct {
	WebhooksProcessed       int64     `json:"webhooks_processed"`
	WebhooksIgnored         int64     `json:"webhooks_ignored"`
	SessionsSegmented       int64     `json:"sessions_segmented"`
	ConversationsStarted    int64     `json:"conversations_started"`
	InterviewsCompleted     int64     `json:"interviews_completed"`
	TranscriptFetchFailures int64     `json:"transcript_fetch_failures"`
	LastUpdateTime          time.Time `json:"last_update_time"`
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		WebhooksProcessed:       m.WebhooksProcessed,
		WebhooksIgnored:         m.WebhooksIgnored,
		SessionsSegmented:       m.SessionsSegmented,
		ConversationsStarted:    m.ConversationsStarted,
		InterviewsCompleted:     m.InterviewsCompleted,
		TranscriptFetchFailures: m.TranscriptFetchFailures,
		LastUpdateTime:          m.LastUpdateTime,
	}
}
