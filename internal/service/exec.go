package service

import (
	"context"

	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/command"
	"github.com/han-ian/tidis/internal/domain"
	"github.com/han-ian/tidis/internal/logger"
)

func (handler *Handler) multi() *Result {
	if handler.multiEnabled {
		return domain.NewResult().SetError(domain.ErrNestedMulti)
	}

	handler.multiEnabled = true
	return domain.NewResult().SetOK()
}

func (handler *Handler) discard() *Result {
	if !handler.multiEnabled {
		return domain.NewResult().SetError(domain.ErrDiscardWithoutMulti)
	}

	handler.Clear()
	return domain.NewResult().SetOK()
}

// exec runs the queued commands in one store transaction and replies with
// an array holding each reply, errors inline.
func (handler *Handler) exec(ctx context.Context) *Result {
	result := domain.NewResult()

	if !handler.multiEnabled {
		return result.SetError(domain.ErrExecWithoutMulti)
	}

	queued := append([]Args(nil), handler.multiArgs...)
	aborted := handler.multiAborted
	handler.Clear()

	if aborted {
		return result.SetError(domain.ErrExecAbort)
	}

	txn, err := handler.store.Begin(ctx)

	if isContextCanceled(err) {
		return result.SetCanceled()
	}

	if hasError(err) {
		return result.SetError(err)
	}

	shared := command.NewSharedTxn(txn)
	reply := redcon.AppendArray(nil, len(queued))

	for _, args := range queued {
		if isContextCanceled(ctx.Err()) {
			txn.Rollback()
			return result.SetCanceled()
		}

		cmdName := normalizeCommandName(string(args[domain.CommandArg]))
		reply = appendResult(reply, handler.run(ctx, cmdName, args, shared))
	}

	err = txn.Commit(ctx)

	if isContextCanceled(err) {
		return result.SetCanceled()
	}

	if hasError(err) {
		logger.Warn("transaction commit failed", "commands", len(queued), "error", err)
		return result.SetError(err)
	}

	return result.SetResponse(reply)
}

func appendResult(reply []byte, result *Result) []byte {
	if hasError(result.Error) {
		return redcon.AppendError(reply, result.Error.Error())
	}

	if result.Response == nil {
		return redcon.AppendNull(reply)
	}

	return append(reply, result.Response...)
}
