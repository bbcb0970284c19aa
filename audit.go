package credcheck

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/credcheck/store"
)

const (
	auditEventCheckSuccess = "check_success"
	auditEventCheckFailure = "check_failure"
	auditEventCheckError   = "check_error"
)

// AuditErrorCode defines a public type used by credcheck APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrStoreUnavailable AuditErrorCode = "store_unavailable"
	auditErrEmptyRealm       AuditErrorCode = "empty_realm"
	auditErrInternal         AuditErrorCode = "internal_error"
)

// AuditEvent records one observable verification outcome. Events never carry
// candidate passwords or stored credential material.
type AuditEvent struct {
	EventID   string            `json:"event_id"`
	Timestamp time.Time         `json:"timestamp"`
	EventType string            `json:"event_type"`
	Realm     string            `json:"realm"`
	User      string            `json:"user,omitempty"`
	Format    string            `json:"format,omitempty"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// AuditSink receives events from the dispatcher. Emit must be safe for
// concurrent use and should return promptly; slow sinks cause drops or
// backpressure depending on AuditConfig.DropIfFull.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// NoOpSink discards every event.
type NoOpSink struct{}

// Emit describes the emit operation and its observable behavior.
func (NoOpSink) Emit(context.Context, AuditEvent) {}

// ChannelSink forwards events to a buffered channel for the caller to drain.
type ChannelSink struct {
	events chan AuditEvent
}

// NewChannelSink describes the newchannelsink operation and its observable behavior.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan AuditEvent, buffer),
	}
}

// Emit describes the emit operation and its observable behavior.
func (s *ChannelSink) Emit(ctx context.Context, event AuditEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// Events describes the events operation and its observable behavior.
func (s *ChannelSink) Events() <-chan AuditEvent {
	return s.events
}

// JSONWriterSink writes one JSON object per line to an io.Writer.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink describes the newjsonwritersink operation and its observable behavior.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

// Emit describes the emit operation and its observable behavior.
func (s *JSONWriterSink) Emit(ctx context.Context, event AuditEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}

func (v *Verifier) emitAudit(ctx context.Context, eventType string, success bool, realm, user, format string, err error) {
	if v == nil || v.audit == nil {
		return
	}

	event := AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Realm:     realm,
		User:      user,
		Format:    format,
		Success:   success,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	v.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrUnavailable):
		return auditErrStoreUnavailable
	case errors.Is(err, ErrEmptyRealm):
		return auditErrEmptyRealm
	}
	return auditErrInternal
}
