package main

// Legacy single-node deployments kept their records in a badger database.
// This read-only wrapper only needs iteration; writes go to the GORM
// backend.

import (
	"github.com/dgraph-io/badger/v4"
)

// NewBadgerStorage opens the legacy badger database at the passed path in
// read-only mode.
func NewBadgerStorage(path string) (*BadgerStorage, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithReadOnly(true))
	if err != nil {
		return nil, err
	}
	return &BadgerStorage{DB: db}, nil
}

// BadgerStorage is a read-only view of a legacy badger database.
type BadgerStorage struct {
	*badger.DB
}

// SubStorage scopes reads to one legacy record family.
func (store *BadgerStorage) SubStorage(subKey string) *BadgerSubStorage {
	return &BadgerSubStorage{db: store, subKey: subKey}
}

// BadgerSubStorage is a sub-storage of a BadgerStorage
type BadgerSubStorage struct {
	db     *BadgerStorage
	subKey string
}

// ReadIterator uses the passed iterator function to iterate over all the
// key-value-pairs in this sub storage
func (store *BadgerSubStorage) ReadIterator(do func(k, v []byte) error) error {
	return store.db.View(
		func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			scanPrefix := []byte(store.subKey + ":")
			for it.Seek(scanPrefix); it.ValidForPrefix(scanPrefix); it.Next() {
				item := it.Item()
				k := item.Key()
				err := item.Value(
					func(v []byte) error {
						return do(k, v)
					},
				)
				if err != nil {
					return err
				}
			}
			return nil
		},
	)
}
