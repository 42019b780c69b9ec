package storage

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/PowerDNS/lmdb-go/lmdb"

	"github.com/han-ian/tidis/internal/attribute"
	"github.com/han-ian/tidis/internal/domain"
)

const (
	dirPerm      = 0755
	filePerm     = 0644
	MaxTables    = 256
	MaxKeySize   = 511
	mapSizeBytes = 4 << 30
	maxReaders   = 128
	noFlags      = 0
	performFlags = lmdb.NoMetaSync | lmdb.NoReadahead
)

type (
	Client struct {
		env      *lmdb.Env
		dbi      map[uint64]lmdb.DBI
		mtx      sync.RWMutex
		clock    func() time.Time
		registry *attribute.Registry
	}

	Option func(*Client)
)

func WithClock(clock func() time.Time) Option {
	return func(client *Client) {
		client.clock = clock
	}
}

// WithRegistry sets the command table that decides which verbs only read.
// The default table is used otherwise.
func WithRegistry(registry *attribute.Registry) Option {
	return func(client *Client) {
		client.registry = registry
	}
}

func NewClient(dataDir string, opts ...Option) (*Client, error) {
	err := os.MkdirAll(dataDir, dirPerm)

	if hasError(err) {
		return nil, err
	}

	env, err := lmdb.NewEnv()

	if hasError(err) {
		return nil, err
	}

	err = env.SetMaxDBs(MaxTables + 1)

	if noError(err) {
		err = env.SetMapSize(mapSizeBytes)
	}

	if noError(err) {
		err = env.SetMaxReaders(maxReaders)
	}

	if noError(err) {
		err = env.Open(dataDir, performFlags, filePerm)
	}

	if hasError(err) {
		env.Close()
		return nil, err
	}

	client := &Client{
		env:   env,
		dbi:   make(map[uint64]lmdb.DBI),
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.registry == nil {
		client.registry, err = attribute.Default()
	}

	if hasError(err) {
		env.Close()
		return nil, err
	}

	return client, nil
}

func (client *Client) Begin(ctx context.Context) (domain.Transaction, error) {
	if err := ctxFlush(ctx); hasError(err) {
		return nil, err
	}

	return newTxn(client), nil
}

func (client *Client) Close() {
	client.mtx.Lock()
	defer client.mtx.Unlock()

	if client.env == nil {
		return
	}

	client.env.Close()
	client.env = nil
}

func (client *Client) environment() (*lmdb.Env, error) {
	client.mtx.RLock()
	defer client.mtx.RUnlock()

	if client.env == nil {
		return nil, ErrClosed
	}

	return client.env, nil
}

func (client *Client) now() int64 {
	return client.clock().UnixMilli()
}
