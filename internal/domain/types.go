package domain

import (
	"context"
	"time"
)

type (
	Result struct {
		Error    error
		Response []byte
	}

	Args    = [][]byte
	Frame   = [][]byte
	Results []*Result

	Commander interface {
		RedisCommand(ctx context.Context, routingID uint64, cmd, key, request []byte) ([]byte, error)
	}

	Transaction interface {
		Commander
		Commit(context.Context) error
		Rollback()
	}

	Store interface {
		Commander
		Begin(context.Context) (Transaction, error)
		Close()
	}

	Router interface {
		Route(key []byte) uint64
	}

	Recorder interface {
		Command(name string, subCommands int, err error, elapsed time.Duration)
	}

	Dispatcher interface {
		Apply(ctx context.Context, args Args) Results
		Clear()
	}

	Logicaler interface {
		Get(ctx context.Context) Dispatcher
		Free(handler Dispatcher)
	}

	CTX string
)

const (
	ID = CTX("ID")

	CommandArg = 0
	FirstArg   = 1
)
