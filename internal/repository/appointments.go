package repository

import (
	"context"
	"log"
	"strings"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	domain "github.com/salon-cloud/salon-api/internal/domain/appointment"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/models"
)

const appointmentsKey = "appointments/appointments.json"

type AppointmentRepository struct {
	doc     document[models.Appointment]
	clients *ClientRepository
	events  *events.Dispatcher
}

func NewAppointmentRepository(
	store blobstore.Store,
	clients *ClientRepository,
	dispatcher *events.Dispatcher,
) *AppointmentRepository {
	return &AppointmentRepository{
		doc: document[models.Appointment]{
			store: store,
			key:   appointmentsKey,
			name:  "appointments",
		},
		clients: clients,
		events:  dispatcher,
	}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	return r.doc.load(ctx)
}

func (r *AppointmentRepository) Create(ctx context.Context, in models.Appointment) (*models.Appointment, error) {
	// time and startTime are interchangeable on the wire
	slot := in.Time
	if slot == "" {
		slot = in.StartTime
	}

	var missing []string
	if in.ClientID == "" {
		missing = append(missing, "clientId")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if slot == "" {
		missing = append(missing, "time/startTime")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	appointments, err := r.doc.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range appointments {
		a := &appointments[i]
		if a.Date == in.Date &&
			(a.Time == slot || a.StartTime == slot) &&
			domain.Blocks(domain.Status(a.Status)) {
			return nil, httperr.Conflict("time slot is already booked")
		}
	}

	if in.ID == "" {
		in.ID = newID("apt")
	}
	if in.Time == "" {
		in.Time = in.StartTime
	}
	if in.StartTime == "" {
		in.StartTime = in.Time
	}
	if in.Status == "" {
		in.Status = string(domain.InitialStatus())
	}
	now := timestamp()
	in.CreatedAt = now
	in.UpdatedAt = now

	appointments = append(appointments, in)
	if err := r.doc.save(ctx, appointments); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("appointment_created", r.createdEventData(ctx, &in), "salon-api"))

	return &in, nil
}

// createdEventData enriches the event with the client's contact data so the
// processor can schedule notifications without a second read.
func (r *AppointmentRepository) createdEventData(ctx context.Context, ap *models.Appointment) map[string]any {
	data := map[string]any{
		"id":            ap.ID,
		"appointmentId": ap.ID,
		"clientId":      ap.ClientID,
		"clientName":    ap.ClientName,
		"date":          ap.Date,
		"time":          ap.Time,
		"service":       ap.Service,
	}

	if r.clients != nil {
		if client := r.clients.FindByID(ctx, ap.ClientID); client != nil {
			data["clientName"] = client.FirstName + " " + client.LastName
			data["clientEmail"] = client.Email
			data["clientPhone"] = client.Phone
		} else {
			log.Printf("could not resolve client %s for appointment event", ap.ClientID)
		}
	}

	return data
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, patch map[string]any) (*models.Appointment, error) {
	appointments, err := r.doc.loadExisting(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfAppointment(appointments, id)
	if idx == -1 {
		return nil, httperr.RecordNotFound("appointment not found")
	}

	merged, err := mergeRecord(appointments[idx], patch)
	if err != nil {
		return nil, err
	}
	merged.ID = id
	merged.UpdatedAt = timestamp()

	appointments[idx] = merged
	if err := r.doc.save(ctx, appointments); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("appointment_updated", map[string]any{
		"id":            merged.ID,
		"appointmentId": merged.ID,
		"date":          merged.Date,
		"time":          merged.Time,
		"status":        merged.Status,
	}, "salon-api"))

	return &merged, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) (*models.Appointment, error) {
	appointments, err := r.doc.loadExisting(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfAppointment(appointments, id)
	if idx == -1 {
		return nil, httperr.RecordNotFound("appointment not found")
	}

	removed := appointments[idx]
	appointments = append(appointments[:idx], appointments[idx+1:]...)

	if err := r.doc.save(ctx, appointments); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("appointment_deleted", map[string]any{
		"id":            removed.ID,
		"appointmentId": removed.ID,
		"date":          removed.Date,
		"time":          removed.Time,
	}, "salon-api"))

	return &removed, nil
}

func indexOfAppointment(appointments []models.Appointment, id string) int {
	for i := range appointments {
		if appointments[i].ID == id {
			return i
		}
	}
	return -1
}
