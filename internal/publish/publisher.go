package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aescanero/stats-gate/internal/gate"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StreamAdder appends entries to a Redis stream
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Event is the payload published for one run
type Event struct {
	RunID      string         `json:"run_id"`
	Report     string         `json:"report"`
	Conditions string         `json:"conditions"`
	Passed     bool           `json:"passed"`
	Outcomes   []gate.Outcome `json:"outcomes"`
	Timestamp  time.Time      `json:"timestamp"`
}

// NewEvent builds an event for a verdict
func NewEvent(report, conditions string, verdict *gate.Verdict) Event {
	return Event{
		RunID:      uuid.NewString(),
		Report:     report,
		Conditions: conditions,
		Passed:     verdict.Passed,
		Outcomes:   verdict.Outcomes,
		Timestamp:  time.Now().UTC(),
	}
}

// Publisher publishes verdict events to a stream
type Publisher struct {
	client  StreamAdder
	stream  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewPublisher creates a new publisher
func NewPublisher(client StreamAdder, stream string, timeout time.Duration, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		stream:  stream,
		timeout: timeout,
		logger:  logger,
	}
}

// Publish publishes an event to the stream
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("published verdict",
		zap.String("stream", p.stream),
		zap.String("entry_id", id),
		zap.String("run_id", event.RunID),
		zap.Bool("passed", event.Passed),
	)

	return nil
}
