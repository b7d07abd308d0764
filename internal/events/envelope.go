package events

import "time"

// Envelope is the single wire shape this system publishes. Consumers that
// predate it are handled by the processor's decoder, not by widening this type.
type Envelope struct {
	EventType string         `json:"eventType"`
	EventData map[string]any `json:"eventData"`
	Timestamp string         `json:"timestamp"`
	Source    string         `json:"source"`
}

func New(eventType string, eventData map[string]any, source string) Envelope {
	return Envelope{
		EventType: eventType,
		EventData: eventData,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    source,
	}
}
