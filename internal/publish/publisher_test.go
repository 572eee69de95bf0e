package publish

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aescanero/stats-gate/internal/gate"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zaptest"
)

type fakeStream struct {
	calls    []*redis.XAddArgs
	deadline bool
	err      error
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.calls = append(f.calls, a)
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	return redis.NewStringResult("1700000000000-0", nil)
}

func sampleVerdict() *gate.Verdict {
	value := 2.0
	return &gate.Verdict{
		Passed: false,
		Outcomes: []gate.Outcome{
			{Condition: "Total.errorPct<5", Status: gate.StatusPass, Field: "Total.errorPct", Operator: "<", Threshold: 5, Value: &value},
			{Condition: "Invalid.Prop<5", Status: gate.StatusFieldNotFound, Field: "Invalid.Prop", Operator: "<", Threshold: 5, Message: "field not found: Invalid"},
		},
	}
}

func TestNewEvent(t *testing.T) {
	event := NewEvent("statistics.json", "Total.errorPct<5;Invalid.Prop<5", sampleVerdict())

	if _, err := uuid.Parse(event.RunID); err != nil {
		t.Fatalf("expected uuid run id, got %q", event.RunID)
	}
	if event.Passed {
		t.Fatal("expected failed verdict")
	}
	if len(event.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(event.Outcomes))
	}
	if event.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %s", event.Timestamp.Location())
	}
}

func TestPublish(t *testing.T) {
	stream := &fakeStream{}
	p := NewPublisher(stream, "stats-gate.verdicts", time.Second, zaptest.NewLogger(t))

	event := NewEvent("statistics.json", "Total.errorPct<5;Invalid.Prop<5", sampleVerdict())
	if err := p.Publish(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stream.calls) != 1 {
		t.Fatalf("expected one XADD, got %d", len(stream.calls))
	}
	call := stream.calls[0]
	if call.Stream != "stats-gate.verdicts" {
		t.Fatalf("unexpected stream %q", call.Stream)
	}
	if !stream.deadline {
		t.Fatal("expected publish context to carry a deadline")
	}

	values, ok := call.Values.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected values type %T", call.Values)
	}
	data, ok := values["data"].(string)
	if !ok {
		t.Fatalf("missing data field: %v", values)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(data), &decoded); err != nil {
		t.Fatalf("data is not json: %v", err)
	}
	if decoded["run_id"] != event.RunID || decoded["report"] != "statistics.json" || decoded["passed"] != false {
		t.Fatalf("unexpected payload %v", decoded)
	}
	outcomes, ok := decoded["outcomes"].([]interface{})
	if !ok || len(outcomes) != 2 {
		t.Fatalf("unexpected outcomes %v", decoded["outcomes"])
	}
	missing := outcomes[1].(map[string]interface{})
	if missing["status"] != "field_not_found" {
		t.Fatalf("unexpected status %v", missing["status"])
	}
	if _, ok := missing["value"]; ok {
		t.Fatal("expected value omitted for unresolved field")
	}
}

func TestPublish_Error(t *testing.T) {
	stream := &fakeStream{err: errors.New("connection refused")}
	p := NewPublisher(stream, "stats-gate.verdicts", time.Second, zaptest.NewLogger(t))

	err := p.Publish(context.Background(), NewEvent("statistics.json", "Total.errorPct<5", sampleVerdict()))
	if err == nil {
		t.Fatal("expected error")
	}
}
