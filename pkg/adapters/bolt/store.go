// Package bolt stores session cursors in an embedded bbolt database.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/switchyard/pkg/domain"
	bolt "go.etcd.io/bbolt"
)

var defaultBucket = []byte("cursors")

// Store implements ports.CursorStore on top of a single bbolt bucket.
// Values are JSON encoded cursors keyed by session ID.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Option configures the Store.
type Option func(*Store)

// WithBucket overrides the bucket name.
func WithBucket(name string) Option {
	return func(s *Store) {
		s.bucket = []byte(name)
	}
}

// Open opens (or creates) the database file.
func Open(filename string, opts ...Option) (*Store, error) {
	db, err := bolt.Open(filename, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	s := &Store{db: db, bucket: defaultBucket}
	for _, opt := range opts {
		opt(s)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return s, nil
}

// Save persists the cursor.
func (s *Store) Save(ctx context.Context, sessionID string, cursor *domain.Cursor) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}
	data, err := json.Marshal(cursor)
	if err != nil {
		return fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(sessionID), data)
	})
}

// Load retrieves the cursor.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Cursor, error) {
	var cursor domain.Cursor
	err := s.db.View(func(tx *bolt.Tx) error {
		// Get returns memory owned by the transaction; Unmarshal copies it out.
		data := tx.Bucket(s.bucket).Get([]byte(sessionID))
		if data == nil {
			return domain.ErrSessionNotFound
		}
		return json.Unmarshal(data, &cursor)
	})
	if err != nil {
		return nil, err
	}
	return &cursor, nil
}

// Delete removes the cursor.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(sessionID))
	})
}

// List returns the stored session IDs in key order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	sessions := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, _ []byte) error {
			sessions = append(sessions, string(k))
			return nil
		})
	})
	return sessions, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
