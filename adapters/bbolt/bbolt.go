// Package bbolt provides a BoltDB-backed KVStorage adapter, the local
// single-file analogue of browser local storage.
package bbolt

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/taskgate/taskgate"
	"go.etcd.io/bbolt"
)

const defaultBucket = "taskgate"

type Store struct {
	db     *bbolt.DB
	bucket []byte
}

var _ taskgate.KVStorage = (*Store)(nil)

// Open opens (creating if necessary) a BoltDB-backed store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	store := &Store{db: db, bucket: []byte(defaultBucket)}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(store.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return store, nil
}

func (s *Store) Get(key string) (string, bool, error) {
	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if value == nil {
		return "", false, nil
	}

	return string(value), true, nil
}

func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
