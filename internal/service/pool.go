package service

import (
	"context"
	"sync"

	"github.com/han-ian/tidis/internal/attribute"
	"github.com/han-ian/tidis/internal/domain"
	"github.com/han-ian/tidis/internal/logger"
)

type (
	Pool struct {
		refs *sync.Pool
	}
)

func NewPool(registry *attribute.Registry, store domain.Store, router domain.Router, recorder domain.Recorder) *Pool {
	return &Pool{
		refs: &sync.Pool{
			New: func() any {
				return NewHandler(registry, store, router, recorder)
			},
		},
	}
}

func (pool *Pool) Get(ctx context.Context) domain.Dispatcher {
	handler, _ := pool.refs.Get().(*Handler)
	logger.Debug("dispatcher acquired", "conn", ctx.Value(domain.ID))
	return handler
}

func (pool *Pool) Free(handler domain.Dispatcher) {
	handler.Clear()
	pool.refs.Put(handler)
}
