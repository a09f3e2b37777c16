package service

import (
	"time"

	"github.com/google/uuid"

	"imobhub_backend/pkg/kvstore"
)

// isoLayout matches JavaScript's Date.toISOString output.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func newID() string {
	return uuid.New().String()
}

// FormatTimestamp renders t the way createdAt fields are stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func timestamp(now func() time.Time) string {
	return FormatTimestamp(now())
}

// collection is a list of records stored under a single key. Every mutation
// reads the whole list, changes it and writes it back.
type collection[T any] struct {
	store *kvstore.Store
	key   string
	id    func(*T) string
}

func (c collection[T]) all() []T {
	return kvstore.GetList[T](c.store, c.key)
}

func (c collection[T]) save(items []T) {
	kvstore.SetList(c.store, c.key, items)
}

func (c collection[T]) add(item T) {
	items := c.all()
	items = append(items, item)
	c.save(items)
}

func (c collection[T]) filter(keep func(*T) bool) []T {
	result := []T{}
	for _, item := range c.all() {
		if keep(&item) {
			result = append(result, item)
		}
	}
	return result
}

func (c collection[T]) find(id string) (*T, bool) {
	for _, item := range c.all() {
		if c.id(&item) == id {
			found := item
			return &found, true
		}
	}
	return nil, false
}

// update applies fn to the record with the given id and persists the list.
// The collection is not written when the id is unknown.
func (c collection[T]) update(id string, fn func(*T)) (*T, bool) {
	items := c.all()
	for i := range items {
		if c.id(&items[i]) != id {
			continue
		}
		fn(&items[i])
		c.save(items)
		updated := items[i]
		return &updated, true
	}
	return nil, false
}

// remove deletes the record with the given id; false when nothing matched.
func (c collection[T]) remove(id string) bool {
	items := c.all()
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if c.id(&item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false
	}
	c.save(kept)
	return true
}
