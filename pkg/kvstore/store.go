package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// Store wraps a Backend with typed list/singleton access.
// It never returns errors to callers: unreadable data is treated as absent
// and failed writes are logged and dropped.
type Store struct {
	backend Backend
	ctx     context.Context
}

func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		ctx:     context.Background(),
	}
}

// read returns the raw value, or false when the key is missing or the backend failed
func (s *Store) read(key string) (string, bool) {
	data, err := s.backend.Get(s.ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", false
	}
	if err != nil {
		log.Printf("Storage error: could not read %s: %v", key, err)
		return "", false
	}
	return data, data != ""
}

func (s *Store) write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Storage error: could not encode %s: %v", key, err)
		return
	}
	if err := s.backend.Set(s.ctx, key, string(data)); err != nil {
		log.Printf("Storage error: could not write %s: %v", key, err)
	}
}

// Remove deletes the key entirely.
func (s *Store) Remove(key string) {
	if err := s.backend.Delete(s.ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("Storage error: could not remove %s: %v", key, err)
	}
}

// GetList returns the list stored at key, or an empty list.
func GetList[T any](s *Store, key string) []T {
	data, ok := s.read(key)
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(data), &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

func SetList[T any](s *Store, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	s.write(key, items)
}

// GetSingle returns the object stored at key, or nil when missing or malformed.
func GetSingle[T any](s *Store, key string) *T {
	data, ok := s.read(key)
	if !ok {
		return nil
	}

	var value *T
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return nil
	}
	return value
}

func SetSingle[T any](s *Store, key string, value T) {
	s.write(key, value)
}
