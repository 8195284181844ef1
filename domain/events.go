package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Authentication events
	UserRegistrationEvent AuditEventType = "USER_REGISTERED"
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	LoginThrottledEvent   AuditEventType = "USER_LOGIN_THROTTLED"
	TokenVerifiedEvent    AuditEventType = "TOKEN_VERIFIED"
	TokenRejectedEvent    AuditEventType = "TOKEN_REJECTED"

	// Authorization events
	AccessDeniedEvent AuditEventType = "ACCESS_DENIED"
	RoleChangedEvent  AuditEventType = "ROLE_CHANGED"
)

// AuditEvent represents a security-relevant business event.
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id,omitempty"`
	Username  string         `json:"username,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Success   bool           `json:"success"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AuditLogger records audit events. Implementations must never block a
// request on audit delivery.
type AuditLogger interface {
	LogEvent(event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated.
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithUser sets the acting user.
func (e *AuditEvent) WithUser(id uint, username string) *AuditEvent {
	e.UserID = id
	e.Username = username
	return e
}

// WithError marks the event failed and records the cause.
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithMetadata adds a metadata entry to the event.
func (e *AuditEvent) WithMetadata(key string, value any) *AuditEvent {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	e.Metadata[key] = value
	return e
}
