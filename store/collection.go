package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Collection is a typed view over one KV key holding a JSON array of records.
// Reads degrade: a corrupt blob reads as empty and undecodable records are
// hidden. Writes are strict: they refuse to overwrite a corrupt blob and carry
// undecodable records through unchanged.
type Collection[T any] struct {
	kv     KV
	key    string
	idOf   func(T) string
	mu     sync.Mutex
	logger *slog.Logger
}

func NewCollection[T any](kv KV, key string, idOf func(T) string) *Collection[T] {
	return &Collection[T]{
		kv:     kv,
		key:    key,
		idOf:   idOf,
		logger: slog.Default().With("component", "store", "collection", key),
	}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// load returns the decoded records and, separately, the raw text of every
// record that could not be decoded into T.
func (c *Collection[T]) load(ctx context.Context) ([]T, []json.RawMessage, error) {
	raw, err := c.kv.Get(ctx, c.key)

	if errors.Is(err, ErrNotFound) {
		return []T{}, nil, nil
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to load collection '%v': %w", c.key, err)
	}

	var records []json.RawMessage

	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, fmt.Errorf("%w: %v: %v", ErrCorruptCollection, c.key, err)
	}

	items := make([]T, 0, len(records))
	var undecodable []json.RawMessage

	for i, record := range records {
		var item T

		if err := json.Unmarshal(record, &item); err != nil {
			c.logger.Warn("hiding undecodable record", "index", i, "err", err)
			undecodable = append(undecodable, record)
			continue
		}

		items = append(items, item)
	}

	return items, undecodable, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T, undecodable []json.RawMessage) error {
	records := make([]json.RawMessage, 0, len(items)+len(undecodable))

	for _, item := range items {
		record, err := json.Marshal(item)

		if err != nil {
			return fmt.Errorf("failed to marshal collection '%v': %w", c.key, err)
		}

		records = append(records, record)
	}

	records = append(records, undecodable...)

	body, err := json.Marshal(records)

	if err != nil {
		return fmt.Errorf("failed to marshal collection '%v': %w", c.key, err)
	}

	if err := c.kv.Set(ctx, c.key, body); err != nil {
		c.logger.Error("failed to persist collection", "err", err)
		return err
	}

	return nil
}

// Exists reports whether the collection key has ever been written.
func (c *Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, err := c.kv.Get(ctx, c.key)

	if errors.Is(err, ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	items, _, err := c.load(ctx)

	if errors.Is(err, ErrCorruptCollection) {
		c.logger.Error("reading corrupt collection as empty", "err", err)
		return []T{}, nil
	}

	return items, err
}

func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := c.All(ctx)

	if err != nil {
		return nil, err
	}

	filtered := []T{}

	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.All(ctx)

	if err != nil {
		return zero, false, err
	}

	for _, item := range items {
		if c.idOf(item) == id {
			return item, true, nil
		}
	}

	return zero, false, nil
}

// Update runs a read-modify-write cycle under the collection lock. Records
// that fn never sees are written back after the ones it returns.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, undecodable, err := c.load(ctx)

	if err != nil {
		return err
	}

	updated, err := fn(items)

	if err != nil {
		return err
	}

	return c.save(ctx, updated, undecodable)
}

// Upsert replaces records with the same id in place and appends new ones.
func (c *Collection[T]) Upsert(ctx context.Context, records ...T) error {
	return c.Update(ctx, func(items []T) ([]T, error) {
		for _, record := range records {
			replaced := false

			for i, item := range items {
				if c.idOf(item) == c.idOf(record) {
					items[i] = record
					replaced = true
					break
				}
			}

			if !replaced {
				items = append(items, record)
			}
		}

		return items, nil
	})
}

func (c *Collection[T]) DeleteWhere(ctx context.Context, match func(T) bool) ([]T, error) {
	removed := []T{}

	err := c.Update(ctx, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))

		for _, item := range items {
			if match(item) {
				removed = append(removed, item)
			} else {
				kept = append(kept, item)
			}
		}

		return kept, nil
	})

	if err != nil {
		return nil, err
	}

	return removed, nil
}

func (c *Collection[T]) Delete(ctx context.Context, ids ...string) (int, error) {
	wanted := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	removed, err := c.DeleteWhere(ctx, func(item T) bool {
		_, ok := wanted[c.idOf(item)]
		return ok
	})

	return len(removed), err
}

// Replace overwrites the collection, discarding whatever was stored,
// including a corrupt blob.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(ctx, items, nil)
}
