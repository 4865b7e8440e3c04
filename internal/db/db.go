// Package db keeps a journal of encode results in a BoltDB file. Only the
// published pair is journaled, never the message text.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

type Config struct {
	File string `yaml:"file"`
}

// Record is one journaled encode result.
type Record struct {
	F1   string    `json:"f1"`
	F2   int       `json:"f2"`
	Time time.Time `json:"time"`
}

var bucketRecords = []byte("records")

var db *bbolt.DB

func Open(config Config) {
	if db != nil {
		panic("db: already opened")
	}
	if config.File == "" {
		panic("db: file is required")
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("db: create db dir: %w", err))
	}

	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		panic(fmt.Errorf("db: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRecords)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketRecords, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		panic(fmt.Errorf("db: initialize buckets: %w", err))
	}
}

func Close() error {
	if db == nil {
		panic("db: not opened")
	}

	err := db.Close()
	if err != nil {
		return fmt.Errorf("db: close bbolt db: %w", err)
	}
	db = nil
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

// Add appends a record to the journal.
func Add(rec Record) error {
	if db == nil {
		panic("db: not opened")
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		if b == nil {
			return fmt.Errorf("db: records bucket not found")
		}

		id, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("db: next record id: %w", err)
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("db: marshal record: %w", err)
		}

		return b.Put(fmt.Appendf(nil, "%016d", id), data)
	})
}

var errStop = fmt.Errorf("stop iteration")

// All yields the journal in insertion order, keyed by record id.
func All() iter.Seq2[string, Record] {
	if db == nil {
		panic("db: not opened")
	}

	return func(yield func(string, Record) bool) {
		err := db.View(func(tx *bbolt.Tx) error {
			b := tx.Bucket(bucketRecords)
			if b == nil {
				return fmt.Errorf("db: records bucket not found")
			}

			return b.ForEach(func(k, v []byte) error {
				var rec Record
				err := json.Unmarshal(v, &rec)
				if err != nil {
					return fmt.Errorf("db: unmarshal record %q: %w", k, err)
				}

				if !yield(string(k), rec) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: scan records: %w", err))
		}
	}
}
