package service

import (
	"context"
	"fmt"

	"github.com/han-ian/tidis/internal/command"
	"github.com/han-ian/tidis/internal/domain"
)

func (handler *Handler) Apply(ctx context.Context, args Args) Results {
	if emptyArgs(args) {
		return Results{handler.reject(domain.NewResult().SetEmpty())}
	}

	cmdName := normalizeCommandName(string(args[domain.CommandArg]))
	attr, exists := handler.registry.Lookup(cmdName)

	if !exists {
		err := fmt.Errorf("%w '%s'", domain.ErrCommandNotFound, args[domain.CommandArg])
		return Results{handler.reject(domain.NewResult().SetError(err))}
	}

	if !validArity(attr.Arity, len(args)) {
		err := fmt.Errorf("%w for '%s' command", domain.ErrMalformedArguments, cmdName)
		return Results{handler.reject(domain.NewResult().SetError(err))}
	}

	switch cmdName {
	case MULTI:
		return Results{handler.multi()}
	case DISCARD:
		return Results{handler.discard()}
	case EXEC:
		return Results{handler.exec(ctx)}
	}

	if handler.isUnsupported(cmdName) {
		err := fmt.Errorf("%w '%s'", domain.ErrUnsupportedCommand, cmdName)
		return Results{handler.reject(domain.NewResult().SetError(err))}
	}

	if handler.multiEnabled {
		handler.multiArgs = append(handler.multiArgs, args)
		return Results{domain.NewResult().SetResponse(domain.QUEUED)}
	}

	return Results{handler.run(ctx, cmdName, args, nil)}
}

// run executes one validated command, locally or against the store.
func (handler *Handler) run(ctx context.Context, cmdName string, args Args, txn *command.SharedTxn) *Result {
	if fn, exists := handler.locals[cmdName]; exists {
		return fn(handler, args)
	}

	return handler.do(ctx, cmdName, args, txn)
}

func (handler *Handler) isUnsupported(cmdName string) bool {
	if _, exists := handler.locals[cmdName]; exists {
		return false
	}

	return handler.registry.IsUnsupported(cmdName)
}

// reject marks a pending transaction as failed before returning result.
func (handler *Handler) reject(result *Result) *Result {
	if handler.multiEnabled {
		handler.multiAborted = true
	}

	return result
}
