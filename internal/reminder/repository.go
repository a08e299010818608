package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saulo-duarte/ignite-guild/internal/storage"
)

// StorageKey is the key of the shared completion set. Per-visitor sets live
// under StorageKey + ":" + visitor id.
const StorageKey = "completedTasks"

var ErrMalformedState = errors.New("reminder: malformed completion state")

func Key(visitorID string) string {
	if visitorID == "" {
		return StorageKey
	}
	return StorageKey + ":" + visitorID
}

type Repository interface {
	// Load returns the stored indices. A missing key is an empty list.
	Load(ctx context.Context, visitorID string) ([]int, error)
	Save(ctx context.Context, visitorID string, indices []int) error
	// Keys lists every stored completion key, shared and per visitor.
	Keys(ctx context.Context) ([]string, error)
	SaveKey(ctx context.Context, key string, indices []int) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context, visitorID string) ([]int, error) {
	raw, ok, err := r.store.Get(ctx, Key(visitorID))
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var indices []int
	if err := json.Unmarshal([]byte(raw), &indices); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return indices, nil
}

func (r *repository) Save(ctx context.Context, visitorID string, indices []int) error {
	return r.SaveKey(ctx, Key(visitorID), indices)
}

func (r *repository) Keys(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	// The prefix also matches unrelated keys such as "completedTasksArchive".
	out := keys[:0]
	for _, k := range keys {
		if k == StorageKey || len(k) > len(StorageKey) && k[len(StorageKey)] == ':' {
			out = append(out, k)
		}
	}
	return out, nil
}

func (r *repository) SaveKey(ctx context.Context, key string, indices []int) error {
	if indices == nil {
		indices = []int{}
	}
	b, err := json.Marshal(indices)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, string(b))
}
