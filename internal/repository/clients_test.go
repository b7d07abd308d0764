package repository

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/models"
)

type capturePublisher struct {
	mu        sync.Mutex
	envelopes []events.Envelope
}

func (p *capturePublisher) Publish(ctx context.Context, topic string, env events.Envelope) (events.PublishResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.envelopes = append(p.envelopes, env)
	return events.PublishResult{MessageID: "msg-1", Topic: topic}, nil
}

func (p *capturePublisher) PublishRaw(ctx context.Context, topic string, payload []byte) (events.PublishResult, error) {
	return events.PublishResult{MessageID: "msg-1", Topic: topic}, nil
}

func (p *capturePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.envelopes))
	for _, env := range p.envelopes {
		out = append(out, env.EventType)
	}
	return out
}

func newClientFixture(t *testing.T) (*ClientRepository, *blobstore.MemoryStore, *capturePublisher, *events.Dispatcher) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	pub := &capturePublisher{}
	dispatcher := events.NewDispatcher(pub, "salon-events")
	return NewClientRepository(store, dispatcher), store, pub, dispatcher
}

func TestClientCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo, _, pub, dispatcher := newClientFixture(t)

	created, err := repo.Create(ctx, models.Client{
		FirstName: "Anna",
		LastName:  "Kowalska",
		Phone:     "+48 600 100 200",
		Email:     "anna@example.com",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.ID, "client_"))
	require.NotEmpty(t, created.CreatedAt)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, created.ID, clients[0].ID)
	assert.Equal(t, "Anna", clients[0].FirstName)

	dispatcher.Close()
	assert.Equal(t, []string{"client_created"}, pub.eventTypes())
}

func TestClientCreateMissingFields(t *testing.T) {
	ctx := context.Background()
	repo, _, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	_, err := repo.Create(ctx, models.Client{FirstName: "Anna"})
	require.True(t, httperr.IsValidation(err))
	assert.Contains(t, err.Error(), "lastName")
	assert.Contains(t, err.Error(), "phone")
}

func TestClientCreateDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	repo, _, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	_, err := repo.Create(ctx, models.Client{FirstName: "Anna", LastName: "Kowalska", Phone: "600100200"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.Client{FirstName: "Jan", LastName: "Nowak", Phone: "600100200"})
	require.True(t, httperr.IsConflict(err))

	// the collection must be unchanged
	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Anna", clients[0].FirstName)
}

func TestClientUpdateIsShallowMerge(t *testing.T) {
	ctx := context.Background()
	repo, _, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	created, err := repo.Create(ctx, models.Client{FirstName: "Anna", LastName: "Kowalska", Phone: "600100200"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, map[string]any{"email": "anna@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Anna", updated.FirstName)
	assert.Equal(t, "anna@example.com", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestClientUpdateIdempotentExceptUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo, _, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	created, err := repo.Create(ctx, models.Client{FirstName: "Anna", LastName: "Kowalska", Phone: "600100200"})
	require.NoError(t, err)

	patch := map[string]any{"firstName": "Anna", "lastName": "Kowalska", "phone": "600100200"}

	first, err := repo.Update(ctx, created.ID, patch)
	require.NoError(t, err)

	second, err := repo.Update(ctx, created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, first.FirstName, second.FirstName)
	assert.Equal(t, first.Phone, second.Phone)
	assert.Greater(t, second.UpdatedAt, first.UpdatedAt)
}

func TestClientUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo, _, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	_, err := repo.Create(ctx, models.Client{FirstName: "Anna", LastName: "Kowalska", Phone: "600100200"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "client_missing", map[string]any{"email": "x@example.com"})
	require.True(t, httperr.IsNotFound(err))
}

func TestClientUpdateWithoutBackingDocument(t *testing.T) {
	ctx := context.Background()
	repo, _, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	_, err := repo.Update(ctx, "client_1", map[string]any{"email": "x@example.com"})
	require.True(t, httperr.IsNotFound(err))
}

func TestClientDelete(t *testing.T) {
	ctx := context.Background()
	repo, _, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	created, err := repo.Create(ctx, models.Client{FirstName: "Anna", LastName: "Kowalska", Phone: "600100200"})
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	_, err = repo.Delete(ctx, created.ID)
	require.True(t, httperr.IsNotFound(err))
}

func TestClientListCorruptDocument(t *testing.T) {
	ctx := context.Background()
	repo, store, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	require.NoError(t, store.Write(ctx, "clients/clients.json", []byte("{not json"), "application/json"))

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestClientListEmptyDocument(t *testing.T) {
	ctx := context.Background()
	repo, store, _, dispatcher := newClientFixture(t)
	defer dispatcher.Close()

	require.NoError(t, store.Write(ctx, "clients/clients.json", []byte("   "), "application/json"))

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}
