package storage

import (
	"errors"
	"slices"

	"github.com/PowerDNS/lmdb-go/lmdb"
)

type (
	bucket interface {
		get(key []byte) ([]byte, error)
		put(key, value []byte) error
		del(key []byte) error
	}

	lmdbBucket struct {
		txn *lmdb.Txn
		dbi lmdb.DBI
	}
)

func (table *lmdbBucket) get(key []byte) ([]byte, error) {
	data, err := table.txn.Get(table.dbi, key)

	if isNotFound(err) {
		return nil, ErrKeyNotFound
	}

	return data, err
}

func (table *lmdbBucket) put(key, value []byte) error {
	return table.txn.Put(table.dbi, key, value, noFlags)
}

func (table *lmdbBucket) del(key []byte) error {
	err := table.txn.Del(table.dbi, key, nil)

	if isNotFound(err) {
		return nil
	}

	return err
}

// operation carries one decoded request against a bucket.
type operation struct {
	table bucket
	key   []byte
	args  [][]byte
	now   int64
}

// load returns the live entry under the key, nil when absent or expired.
func (op *operation) load() (*entry, error) {
	data, err := op.table.get(op.key)

	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}

	if hasError(err) {
		return nil, err
	}

	item, err := decodeEntry(data)

	if hasError(err) {
		return nil, err
	}

	if item.expired(op.now) {
		return nil, nil
	}

	return item, nil
}

// loadKind is load plus a type check.
func (op *operation) loadKind(want kind) (*entry, error) {
	item, err := op.load()

	if hasError(err) || item == nil {
		return nil, err
	}

	if item.kind != want {
		return nil, ErrWrongType
	}

	return item, nil
}

func (op *operation) store(item *entry) error {
	return op.table.put(op.key, item.encode())
}

func (op *operation) remove() error {
	return op.table.del(op.key)
}

func (op *operation) arg(index int) []byte {
	return slices.Clone(op.args[index])
}
