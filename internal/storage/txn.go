package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/PowerDNS/lmdb-go/lmdb"
)

type (
	// Txn buffers writes per routing table and applies them in a single
	// LMDB write transaction on Commit. Reads see the buffered writes first.
	Txn struct {
		client *Client
		writes map[uint64]map[string]*pending
		mtx    sync.Mutex
		done   bool
	}

	pending struct {
		value   []byte
		deleted bool
	}

	overlay struct {
		txn       *Txn
		routingID uint64
		dbi       lmdb.DBI
	}
)

func newTxn(client *Client) *Txn {
	return &Txn{
		client: client,
		writes: make(map[uint64]map[string]*pending),
	}
}

func (txn *Txn) RedisCommand(ctx context.Context, routingID uint64, cmd, key, request []byte) ([]byte, error) {
	args, found, err := decodeRequest(ctx, cmd, key, request)

	if hasError(err) {
		return nil, err
	}

	dbi, err := txn.client.table(routingID)

	if hasError(err) {
		return nil, err
	}

	txn.mtx.Lock()
	defer txn.mtx.Unlock()

	if txn.done {
		return nil, ErrTxnDone
	}

	return found.run(&operation{
		table: &overlay{txn: txn, routingID: routingID, dbi: dbi},
		key:   args[1],
		args:  args,
		now:   txn.client.now(),
	})
}

func (txn *Txn) Commit(ctx context.Context) error {
	if err := ctxFlush(ctx); hasError(err) {
		txn.Rollback()
		return err
	}

	txn.mtx.Lock()
	defer txn.mtx.Unlock()

	if txn.done {
		return ErrTxnDone
	}

	txn.done = true

	if len(txn.writes) == 0 {
		return nil
	}

	tables := make(map[uint64]lmdb.DBI, len(txn.writes))

	for routingID := range txn.writes {
		dbi, err := txn.client.table(routingID)

		if hasError(err) {
			return err
		}

		tables[routingID] = dbi
	}

	env, err := txn.client.environment()

	if hasError(err) {
		return err
	}

	return env.Update(func(lmdbTxn *lmdb.Txn) error {
		for routingID, writes := range txn.writes {
			table := &lmdbBucket{txn: lmdbTxn, dbi: tables[routingID]}

			for key, write := range writes {
				var err error

				if write.deleted {
					err = table.del([]byte(key))
				} else {
					err = table.put([]byte(key), write.value)
				}

				if hasError(err) {
					return err
				}
			}
		}

		return nil
	})
}

func (txn *Txn) Rollback() {
	txn.mtx.Lock()
	defer txn.mtx.Unlock()

	txn.done = true
	clear(txn.writes)
}

func (layer *overlay) get(key []byte) ([]byte, error) {
	if write, buffered := layer.txn.writes[layer.routingID][string(key)]; buffered {
		if write.deleted {
			return nil, ErrKeyNotFound
		}

		return write.value, nil
	}

	env, err := layer.txn.client.environment()

	if hasError(err) {
		return nil, err
	}

	var data []byte

	err = env.View(func(lmdbTxn *lmdb.Txn) error {
		value, getErr := (&lmdbBucket{txn: lmdbTxn, dbi: layer.dbi}).get(key)
		data = slices.Clone(value)
		return getErr
	})

	return data, err
}

func (layer *overlay) put(key, value []byte) error {
	layer.buffer(key, &pending{value: slices.Clone(value)})
	return nil
}

func (layer *overlay) del(key []byte) error {
	layer.buffer(key, &pending{deleted: true})
	return nil
}

func (layer *overlay) buffer(key []byte, write *pending) {
	writes, exists := layer.txn.writes[layer.routingID]

	if !exists {
		writes = make(map[string]*pending)
		layer.txn.writes[layer.routingID] = writes
	}

	writes[string(key)] = write
}
