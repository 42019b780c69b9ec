package service

import (
	"github.com/han-ian/tidis/internal/attribute"
	"github.com/han-ian/tidis/internal/command"
	"github.com/han-ian/tidis/internal/domain"
)

type (
	Args    = domain.Args
	Result  = domain.Result
	Results = domain.Results

	local func(handler *Handler, args Args) *Result

	// Handler dispatches the commands of one connection. It is not safe for
	// concurrent use; the pool hands each connection its own.
	Handler struct {
		registry *attribute.Registry
		store    domain.Store
		router   domain.Router
		recorder domain.Recorder
		executor *command.Executor
		locals   map[string]local

		multiArgs    []Args
		multiEnabled bool
		multiAborted bool
	}
)

func NewHandler(registry *attribute.Registry, store domain.Store, router domain.Router, recorder domain.Recorder) *Handler {
	return &Handler{
		registry:  registry,
		store:     store,
		router:    router,
		recorder:  recorder,
		executor:  command.NewExecutor(store),
		multiArgs: make([]Args, 0),
		locals: map[string]local{
			PING:    ping,
			COMMAND: introspect,
		},
	}
}

func (handler *Handler) Clear() {
	handler.multiArgs = handler.multiArgs[:0]
	handler.multiEnabled = false
	handler.multiAborted = false
}
