package repository

import (
	"context"
	"strings"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/models"
)

const clientsKey = "clients/clients.json"

type ClientRepository struct {
	doc    document[models.Client]
	events *events.Dispatcher
}

func NewClientRepository(store blobstore.Store, dispatcher *events.Dispatcher) *ClientRepository {
	return &ClientRepository{
		doc: document[models.Client]{
			store: store,
			key:   clientsKey,
			name:  "clients",
		},
		events: dispatcher,
	}
}

func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	return r.doc.load(ctx)
}

func (r *ClientRepository) Create(ctx context.Context, in models.Client) (*models.Client, error) {
	var missing []string
	if in.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if in.LastName == "" {
		missing = append(missing, "lastName")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	clients, err := r.doc.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range clients {
		if clients[i].Phone == in.Phone {
			return nil, httperr.Conflict("client with this phone number already exists")
		}
	}

	if in.ID == "" {
		in.ID = newID("client")
	}
	now := timestamp()
	in.CreatedAt = now
	in.UpdatedAt = now

	clients = append(clients, in)
	if err := r.doc.save(ctx, clients); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("client_created", map[string]any{
		"id":         in.ID,
		"clientId":   in.ID,
		"clientName": in.FirstName + " " + in.LastName,
	}, "salon-api"))

	return &in, nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, patch map[string]any) (*models.Client, error) {
	clients, err := r.doc.loadExisting(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range clients {
		if clients[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, httperr.RecordNotFound("client not found")
	}

	merged, err := mergeRecord(clients[idx], patch)
	if err != nil {
		return nil, err
	}
	merged.ID = id
	merged.UpdatedAt = timestamp()

	clients[idx] = merged
	if err := r.doc.save(ctx, clients); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("client_updated", map[string]any{
		"id":       merged.ID,
		"clientId": merged.ID,
	}, "salon-api"))

	return &merged, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) (*models.Client, error) {
	clients, err := r.doc.loadExisting(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range clients {
		if clients[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, httperr.RecordNotFound("client not found")
	}

	removed := clients[idx]
	clients = append(clients[:idx], clients[idx+1:]...)

	if err := r.doc.save(ctx, clients); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("client_deleted", map[string]any{
		"id":       removed.ID,
		"clientId": removed.ID,
	}, "salon-api"))

	return &removed, nil
}

// FindByID is a best-effort lookup used to enrich appointment events with
// client contact data. A missing client is not an error here.
func (r *ClientRepository) FindByID(ctx context.Context, id string) *models.Client {
	clients, err := r.doc.load(ctx)
	if err != nil {
		return nil
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}
