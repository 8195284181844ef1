// Package audit emits domain audit events through the structured logger.
package audit

import (
	"github.com/rs/zerolog"

	"github.com/drax210310/jugueteria-backend/domain"
)

// ZerologAuditLogger implements domain.AuditLogger on top of zerolog.
type ZerologAuditLogger struct {
	logger zerolog.Logger
}

// NewZerologAuditLogger creates an audit logger writing to the given logger.
func NewZerologAuditLogger(logger zerolog.Logger) domain.AuditLogger {
	return &ZerologAuditLogger{logger: logger.With().Str("component", "audit").Logger()}
}

// LogEvent implements domain.AuditLogger. Events are written synchronously to
// the logger sink; zerolog writes are non-blocking for practical purposes.
func (l *ZerologAuditLogger) LogEvent(event *domain.AuditEvent) {
	if event == nil {
		return
	}
	ev := l.logger.Info()
	if !event.Success {
		ev = l.logger.Warn()
	}
	ev = ev.
		Str("event_type", string(event.EventType)).
		Time("event_time", event.Timestamp).
		Bool("event_success", event.Success)
	if event.UserID != 0 {
		ev = ev.Uint("user_id", event.UserID)
	}
	if event.Username != "" {
		ev = ev.Str("username", event.Username)
	}
	if event.ErrorMsg != "" {
		ev = ev.Str("error_msg", event.ErrorMsg)
	}
	for k, v := range event.Metadata {
		ev = ev.Interface(k, v)
	}
	ev.Msg("audit event")
}
