package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/httperr"
)

// Each collection is one JSON array document in the bucket. Every mutation
// is read-modify-write of the whole array: last writer wins, there is no
// lock or concurrency token. That is the persistence contract of this
// system, not an accident.

type document[T any] struct {
	store blobstore.Store
	key   string
	name  string
}

// load reads the collection leniently: a missing document is an empty
// collection, and a corrupt or empty body is logged and substituted with an
// empty collection instead of failing the read.
func (d document[T]) load(ctx context.Context) ([]T, error) {
	data, err := d.store.Read(ctx, d.key)
	if errors.Is(err, blobstore.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		log.Printf("invalid JSON in %s, substituting empty collection: %v", d.key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// loadExisting is the strict variant used by update/delete: a missing
// backing document is a not-found error, matching the source behavior of
// "database not found".
func (d document[T]) loadExisting(ctx context.Context) ([]T, error) {
	ok, err := d.store.Exists(ctx, d.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.RecordNotFound(d.name + " database not found")
	}

	return d.load(ctx)
}

func (d document[T]) save(ctx context.Context, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return d.store.Write(ctx, d.key, data, "application/json")
}

// ensure creates an empty backing document when none exists yet.
func (d document[T]) ensure(ctx context.Context) error {
	ok, err := d.store.Exists(ctx, d.key)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	log.Printf("creating new %s document", d.key)
	return d.store.Write(ctx, d.key, []byte("[]"), "application/json")
}

// --------------------------------------------------
// Shared record helpers
// --------------------------------------------------

// timeLayout mirrors JavaScript's toISOString so stored timestamps stay
// byte-compatible with documents the frontend wrote.
const timeLayout = "2006-01-02T15:04:05.000Z"

var (
	stampMu   sync.Mutex
	lastStamp time.Time
)

// timestamp returns the current UTC time at millisecond resolution. Two
// writes inside the same millisecond would otherwise stamp equal updatedAt
// values, so a repeated stamp is bumped by one millisecond.
func timestamp() string {
	stampMu.Lock()
	defer stampMu.Unlock()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if !now.After(lastStamp) {
		now = lastStamp.Add(time.Millisecond)
	}
	lastStamp = now

	return now.Format(timeLayout)
}

func newID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixMilli())
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newSuffixedID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// mergeRecord shallow-merges a patch over the current record via its JSON
// form. The id is never patchable; createdAt survives unless explicitly set.
func mergeRecord[T any](current T, patch map[string]any) (T, error) {
	var merged T

	base := map[string]any{}
	raw, err := json.Marshal(current)
	if err != nil {
		return merged, err
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return merged, err
	}

	for k, v := range patch {
		if k == "id" {
			continue
		}
		base[k] = v
	}

	raw, err = json.Marshal(base)
	if err != nil {
		return merged, err
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return merged, httperr.Validation("invalid field types in update: " + err.Error())
	}

	return merged, nil
}
