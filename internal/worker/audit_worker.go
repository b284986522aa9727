package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/lotusmall/web-gateway/internal/events"
)

// AuditWorker records session and submission lifecycle events to the log.
type AuditWorker struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditWorker creates the worker.
func NewAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) *AuditWorker {
	return &AuditWorker{dispatcher: dispatcher, logger: logger}
}

// Start subscribes to every audited event type.
func (w *AuditWorker) Start() {
	if w.dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{
		events.EventSessionCreated,
		events.EventSessionRefreshed,
		events.EventSessionCleared,
		events.EventAccountDeleted,
		events.EventInquirySubmitted,
		events.EventContactSubmitted,
	} {
		w.dispatcher.Subscribe(t, w.record)
	}
}

func (w *AuditWorker) record(_ context.Context, event events.Event) error {
	w.logger.Info(string(event.Type),
		zap.String("session_id", event.SessionID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
