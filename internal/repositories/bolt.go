package repositories

import (
	"context"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

const boltBucket = "currency_converter"

// BoltKeyValue stores entries in a single BoltDB file.
type BoltKeyValue struct {
	db *bolt.DB
}

// NewBoltKeyValue opens (or creates) the database file at path and makes
// sure the bucket exists.
func NewBoltKeyValue(path string) (*BoltKeyValue, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltKeyValue{db: db}, nil
}

// Close releases the database file lock.
func (b *BoltKeyValue) Close() error {
	return b.db.Close()
}

func (b *BoltKeyValue) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		// v is only valid inside the transaction
		out = append([]byte(nil), v...)
		return nil
	})

	logger.Log.Debugw("bolt get",
		"key", key,
		"size", len(out),
		"error", err,
	)
	return out, err
}

func (b *BoltKeyValue) Put(_ context.Context, entries map[string][]byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucket))
		for k, v := range entries {
			if err := bucket.Put([]byte(k), v); err != nil {
				return err
			}
		}
		return nil
	})

	logger.Log.Debugw("bolt put",
		"keys", len(entries),
		"error", err,
	)
	return err
}
