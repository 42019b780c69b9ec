package storage

import (
	"context"
	"math"
	"strconv"

	"github.com/PowerDNS/lmdb-go/lmdb"
)

func hasError(err error) bool {
	return err != nil
}

func noError(err error) bool {
	return err == nil
}

func isEmpty(key []byte) bool {
	return len(key) == 0
}

func exceedsLimit(key []byte) bool {
	return len(key) > MaxKeySize
}

func isNotFound(err error) bool {
	return lmdb.IsNotFound(err)
}

func ctxFlush(ctx context.Context) error {
	return ctx.Err()
}

func validateKey(key []byte) error {
	if isEmpty(key) {
		return ErrEmptyKey
	}

	if exceedsLimit(key) {
		return ErrKeyTooLarge
	}

	return nil
}

func parseInt(arg []byte) (int64, error) {
	value, err := strconv.ParseInt(string(arg), 10, 64)

	if hasError(err) {
		return 0, ErrNotInteger
	}

	return value, nil
}

// deadline converts a positive relative expiry in unit milliseconds to an
// absolute time, rejecting amounts that would overflow.
func deadline(now, amount, unit int64) (int64, error) {
	if amount > (math.MaxInt64-now)/unit {
		return 0, ErrExpireTime
	}

	return now + amount*unit, nil
}
