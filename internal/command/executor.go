package command

import (
	"context"

	"github.com/han-ian/tidis/internal/domain"
	"github.com/han-ian/tidis/internal/logger"
)

// Executor submits single-key commands to the store. It keeps no state
// between calls.
type Executor struct {
	client domain.Commander
}

func NewExecutor(client domain.Commander) *Executor {
	return &Executor{client: client}
}

// Execute sends cmd for key to the partition routingID. When txn is set the
// call runs inside it, otherwise the store applies it on its own.
func (executor *Executor) Execute(ctx context.Context, routingID uint64, cmd, key []byte, frame Frame, txn *SharedTxn) ([]byte, error) {
	request, err := EncodeArray(frame)

	if hasError(err) {
		return nil, err
	}

	logger.Debug("store command", "cmd", string(cmd), "routing_id", routingID, "txn", txn != nil)

	if txn == nil {
		return executor.client.RedisCommand(ctx, routingID, cmd, key, request)
	}

	var reply []byte

	err = txn.Do(ctx, func(tx domain.Transaction) error {
		var cmdErr error
		reply, cmdErr = tx.RedisCommand(ctx, routingID, cmd, key, request)
		return cmdErr
	})

	if hasError(err) {
		return nil, err
	}

	return reply, nil
}
