// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

// Bucket layout:
//
//	graphs/<name>/header          Header JSON
//	graphs/<name>/records/<id>    Record JSON
var (
	bucketGraphs  = []byte("graphs")
	bucketRecords = []byte("records")
	keyHeader     = []byte("header")
)

const boltOpenTimeout = time.Second

// BoltStore keeps every graph in one bbolt database file.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the database at path.
func OpenBolt(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store.OpenBolt: %w", err)
		}
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("store.OpenBolt: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Load reads the records of name in ID order.
func (s *BoltStore) Load(ctx context.Context, name string) ([]Record, error) {
	if err := checkName(name); err != nil {
		return nil, fmt.Errorf("store.BoltStore.Load: %w", err)
	}
	var records []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketGraphs)
		if root == nil {
			return fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		gb := root.Bucket([]byte(name))
		if gb == nil {
			return fmt.Errorf("%q: %w", name, ErrNotFound)
		}

		raw := gb.Get(keyHeader)
		if raw == nil {
			return fmt.Errorf("%q: missing header: %w", name, ErrTruncated)
		}
		var hdr Header
		if err := json.Unmarshal(raw, &hdr); err != nil {
			return fmt.Errorf("%q: header: %v: %w", name, err, ErrInconsistent)
		}
		if err := hdr.check(); err != nil {
			return err
		}

		rb := gb.Bucket(bucketRecords)
		if rb != nil {
			records = make([]Record, 0, hdr.Nodes)
			c := rb.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				var r Record
				if err := json.Unmarshal(v, &r); err != nil {
					return fmt.Errorf("%q: record %q: %v: %w", name, k, err, ErrInconsistent)
				}
				if r.ID != string(k) {
					return fmt.Errorf("%q: record key %q holds id %q: %w", name, k, r.ID, ErrInconsistent)
				}
				records = append(records, r)
			}
		}

		return hdr.checkCount(len(records))
	})
	if err != nil {
		return nil, fmt.Errorf("store.BoltStore.Load: %w", err)
	}
	if err = Validate(records); err != nil {
		return nil, fmt.Errorf("store.BoltStore.Load: %q: %w", name, err)
	}

	return records, nil
}

// Save replaces the bucket of name in a single transaction.
func (s *BoltStore) Save(ctx context.Context, name string, records []Record) error {
	if err := checkName(name); err != nil {
		return fmt.Errorf("store.BoltStore.Save: %w", err)
	}
	if err := Validate(records); err != nil {
		return fmt.Errorf("store.BoltStore.Save: %w", err)
	}
	hdr, err := json.Marshal(NewHeader(len(records)))
	if err != nil {
		return fmt.Errorf("store.BoltStore.Save: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketGraphs)
		if err != nil {
			return err
		}
		if root.Bucket([]byte(name)) != nil {
			if err = root.DeleteBucket([]byte(name)); err != nil {
				return err
			}
		}
		gb, err := root.CreateBucket([]byte(name))
		if err != nil {
			return err
		}
		if err = gb.Put(keyHeader, hdr); err != nil {
			return err
		}
		rb, err := gb.CreateBucket(bucketRecords)
		if err != nil {
			return err
		}
		for i := range records {
			if err = ctx.Err(); err != nil {
				return err
			}
			v, err := json.Marshal(&records[i])
			if err != nil {
				return err
			}
			if err = rb.Put([]byte(records[i].ID), v); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("store.BoltStore.Save: %w", err)
	}

	return nil
}

// Names lists the graph buckets.
func (s *BoltStore) Names(_ context.Context) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketGraphs)
		if root == nil {
			return nil
		}
		return root.ForEach(func(k, v []byte) error {
			if v == nil { // nested bucket
				names = append(names, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store.BoltStore.Names: %w", err)
	}

	return names, nil
}

// Close closes the database file.
func (s *BoltStore) Close() error { return s.db.Close() }
