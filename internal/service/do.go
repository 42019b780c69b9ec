package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/han-ian/tidis/internal/attribute"
	"github.com/han-ian/tidis/internal/command"
	"github.com/han-ian/tidis/internal/domain"
	"github.com/han-ian/tidis/internal/logger"
)

func (handler *Handler) do(ctx context.Context, cmdName string, args Args, txn *command.SharedTxn) *Result {
	started := time.Now()
	result := domain.NewResult()
	decomposition, err := handler.registry.Split(args)

	if hasError(err) {
		handler.recorder.Command(cmdName, 0, err, time.Since(started))
		return result.SetError(err)
	}

	commands := decomposition.Commands()
	logger.Debug("dispatch", "cmd", cmdName, "sub_commands", len(commands), "passthrough", decomposition.IsPassthrough())

	replies, err := handler.dispatch(ctx, commands, txn)

	var reply []byte

	if noError(err) {
		reply, err = merge(handler.registry.Shape(cmdName), replies)
	}

	if isContextCanceled(err) {
		err = domain.ErrCanceled
	}

	handler.recorder.Command(cmdName, len(commands), err, time.Since(started))

	if hasError(err) {
		return result.SetError(err)
	}

	return result.SetResponse(reply)
}

// dispatch runs the sub-commands concurrently unless they share a
// transaction, in which case they run in order. Replies keep the order of
// commands.
func (handler *Handler) dispatch(ctx context.Context, commands [][][]byte, txn *command.SharedTxn) ([][]byte, error) {
	replies := make([][]byte, len(commands))

	if txn != nil || len(commands) == singleCommand {
		for index, argv := range commands {
			reply, err := handler.execute(ctx, argv, txn)

			if hasError(err) {
				return nil, err
			}

			replies[index] = reply
		}

		return replies, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for index, argv := range commands {
		group.Go(func() error {
			reply, err := handler.execute(groupCtx, argv, nil)
			replies[index] = reply
			return err
		})
	}

	if err := group.Wait(); hasError(err) {
		return nil, err
	}

	return replies, nil
}

func (handler *Handler) execute(ctx context.Context, argv [][]byte, txn *command.SharedTxn) ([]byte, error) {
	if err := handler.registry.CheckSingleKey(argv); hasError(err) {
		return nil, err
	}

	return command.ParseArgv(argv).Execute(ctx, handler.executor, handler.router, txn)
}

func merge(shape attribute.Shape, replies [][]byte) ([]byte, error) {
	if shape != attribute.VariableMultiKey {
		return replies[0], nil
	}

	return mergeReplies(replies)
}
