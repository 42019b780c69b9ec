package command

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/han-ian/tidis/internal/domain"
)

// SharedTxn lends one store transaction to the sequential steps of a single
// logical operation. The caller that opened the transaction owns it.
type SharedTxn struct {
	sem *semaphore.Weighted
	txn domain.Transaction
}

func NewSharedTxn(txn domain.Transaction) *SharedTxn {
	return &SharedTxn{
		sem: semaphore.NewWeighted(1),
		txn: txn,
	}
}

// Do holds the transaction for exactly one call of fn.
func (shared *SharedTxn) Do(ctx context.Context, fn func(domain.Transaction) error) error {
	if err := shared.sem.Acquire(ctx, 1); hasError(err) {
		return err
	}
	defer shared.sem.Release(1)

	return fn(shared.txn)
}

func (shared *SharedTxn) Txn() domain.Transaction {
	return shared.txn
}
