package repository

import (
	"context"
	"strings"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/models"
)

const servicesKey = "services/services.json"

type ServiceRepository struct {
	doc    document[models.Service]
	events *events.Dispatcher
}

func NewServiceRepository(store blobstore.Store, dispatcher *events.Dispatcher) *ServiceRepository {
	return &ServiceRepository{
		doc: document[models.Service]{
			store: store,
			key:   servicesKey,
			name:  "services",
		},
		events: dispatcher,
	}
}

// List creates the backing document on first read; services is the only
// collection the source system bootstrapped this way.
func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	if err := r.doc.ensure(ctx); err != nil {
		return nil, err
	}
	return r.doc.load(ctx)
}

func (r *ServiceRepository) Create(ctx context.Context, in models.Service) (*models.Service, error) {
	if in.Name == "" || in.Price <= 0 || in.Duration <= 0 {
		return nil, httperr.Validation("name, price, and duration are required")
	}

	services, err := r.doc.load(ctx)
	if err != nil {
		return nil, err
	}

	in.ID = newSuffixedID("service")
	in.Name = strings.TrimSpace(in.Name)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.Description = strings.TrimSpace(in.Description)
	now := timestamp()
	in.CreatedAt = now
	in.UpdatedAt = now

	services = append(services, in)
	if err := r.doc.save(ctx, services); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("service_created", map[string]any{
		"id":    in.ID,
		"name":  in.Name,
		"price": in.Price,
	}, "salon-api"))

	return &in, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, patch map[string]any) (*models.Service, error) {
	services, err := r.doc.loadExisting(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range services {
		if services[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, httperr.RecordNotFound("service not found")
	}

	merged, err := mergeRecord(services[idx], patch)
	if err != nil {
		return nil, err
	}
	merged.ID = id
	merged.Name = strings.TrimSpace(merged.Name)
	merged.CategoryID = strings.TrimSpace(merged.CategoryID)
	merged.Description = strings.TrimSpace(merged.Description)
	merged.UpdatedAt = timestamp()

	services[idx] = merged
	if err := r.doc.save(ctx, services); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("service_updated", map[string]any{
		"id":   merged.ID,
		"name": merged.Name,
	}, "salon-api"))

	return &merged, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) (*models.Service, error) {
	services, err := r.doc.loadExisting(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range services {
		if services[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, httperr.RecordNotFound("service not found")
	}

	removed := services[idx]
	services = append(services[:idx], services[idx+1:]...)

	if err := r.doc.save(ctx, services); err != nil {
		return nil, err
	}

	r.events.Dispatch(events.New("service_deleted", map[string]any{
		"id":   removed.ID,
		"name": removed.Name,
	}, "salon-api"))

	return &removed, nil
}
