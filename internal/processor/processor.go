package processor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"

	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/stats"
)

// Result of processing one envelope.
type Result struct {
	Success bool     `json:"success"`
	Actions []string `json:"actions,omitempty"`
	Reason  string   `json:"reason,omitempty"`
}

type Processor struct {
	publisher events.Publisher
	topic     string
	stats     *stats.Collector
}

func New(publisher events.Publisher, topic string, collector *stats.Collector) *Processor {
	return &Processor{
		publisher: publisher,
		topic:     topic,
		stats:     collector,
	}
}

// ======================================================
// WIRE DECODING
// ======================================================

// DecodeEnvelope extracts an event envelope from one of the three wire
// shapes external publishers produce, first match wins:
//
//  1. a push wrapper with a base64 inner payload: {"message":{"data":"..."}}
//  2. a raw envelope object
//  3. a JSON string containing an envelope
//
// Anything else is a decode error; the caller logs and drops the message.
func DecodeEnvelope(raw []byte) (events.Envelope, error) {
	var push struct {
		Message struct {
			Data string `json:"data"`
		} `json:"message"`
	}
	if err := json.Unmarshal(raw, &push); err == nil && push.Message.Data != "" {
		if inner, err := base64.StdEncoding.DecodeString(push.Message.Data); err == nil {
			var env events.Envelope
			if err := json.Unmarshal(inner, &env); err == nil && env.EventType != "" {
				return env, nil
			}
		}
	}

	var env events.Envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.EventType != "" {
		return env, nil
	}

	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		if err := json.Unmarshal([]byte(quoted), &env); err == nil && env.EventType != "" {
			return env, nil
		}
	}

	return events.Envelope{}, errors.New("message matches no known wire shape")
}

// ======================================================
// DISPATCH
// ======================================================

func (p *Processor) Process(ctx context.Context, env events.Envelope) Result {
	log.Printf("processing event: %s (source=%s)", env.EventType, env.Source)

	var res Result

	switch env.EventType {
	case "appointment_created":
		res = p.appointmentCreated(env.EventData)
	case "appointment_updated":
		res = p.appointmentUpdated(env.EventData)
	case "appointment_deleted":
		res = p.appointmentCancelled(env.EventData)
	case "client_created":
		res = p.clientCreated(env.EventData)
	case "notification_sent":
		res = p.notificationSent(env.EventData)
	case "test_notification":
		res = p.testNotification(env.EventData)
	case "analytics_processed", "event_processed":
		// our own output looping back through the topic
		res = Result{Success: true, Actions: []string{"logged"}}
	default:
		log.Printf("unknown event type: %s", env.EventType)
		res = Result{Success: false, Reason: "unknown event type"}
	}

	p.stats.Incr(ctx, "events_processed")

	// never wrap our own analytics output again
	if env.EventType != "analytics_processed" && env.EventType != "event_processed" {
		p.sendAnalytics(ctx, env.EventType, res)
	}

	return res
}

// ======================================================
// HANDLERS
// ======================================================

func (p *Processor) appointmentCreated(data map[string]any) Result {
	log.Printf("appointment created: %v on %v", data["id"], data["date"])

	p.scheduleReminder(data)
	return Result{Success: true, Actions: []string{"reminder_scheduled", "stats_updated"}}
}

func (p *Processor) appointmentUpdated(data map[string]any) Result {
	log.Printf("appointment updated: %v", data["id"])
	return Result{Success: true, Actions: []string{"reminder_updated"}}
}

func (p *Processor) appointmentCancelled(data map[string]any) Result {
	log.Printf("appointment cancelled: %v", data["id"])
	return Result{Success: true, Actions: []string{"reminder_cancelled", "stats_updated"}}
}

func (p *Processor) clientCreated(data map[string]any) Result {
	log.Printf("client created: %v", data["id"])
	return Result{Success: true, Actions: []string{"stats_updated"}}
}

func (p *Processor) notificationSent(data map[string]any) Result {
	log.Printf("notification sent: %v (%v)", data["id"], data["type"])
	return Result{Success: true, Actions: []string{"stats_updated"}}
}

func (p *Processor) testNotification(data map[string]any) Result {
	log.Printf("test notification: %v", data)
	return Result{Success: true, Actions: []string{"logged"}}
}

// TODO: replace the log line with a real delayed job once a scheduler is
// available; today the reminder exists only as an analytics trail.
func (p *Processor) scheduleReminder(data map[string]any) {
	log.Printf("scheduling reminder for appointment %v on %v", data["id"], data["date"])
}

// ======================================================
// ANALYTICS REPUBLISH
// ======================================================

func (p *Processor) sendAnalytics(ctx context.Context, eventType string, res Result) {
	env := events.New("analytics_processed", map[string]any{
		"originalEventType": eventType,
		"processResult":     res,
	}, "event-processor")

	if _, err := p.publisher.Publish(ctx, p.topic, env); err != nil {
		log.Printf("failed to send analytics event: %v", err)
	}
}
