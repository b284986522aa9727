package events

// EventType labels a gateway lifecycle event.
type EventType string

const (
	EventSessionCreated   EventType = "session.created"
	EventSessionRefreshed EventType = "session.refreshed"
	EventSessionCleared   EventType = "session.cleared"
	EventAccountDeleted   EventType = "account.deleted"
	EventInquirySubmitted EventType = "inquiry.submitted"
	EventContactSubmitted EventType = "contact.submitted"
)

// Event is one occurrence handed to subscribers. SessionID identifies the
// visitor; the payload never carries the bearer token itself.
type Event struct {
	Type      EventType
	SessionID string
	Payload   map[string]any
}
