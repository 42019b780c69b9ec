package storage

import (
	"math"
	"strconv"

	"github.com/tidwall/redcon"
)

func incr(op *operation) ([]byte, error) {
	return incrementBy(op, 1)
}

func decr(op *operation) ([]byte, error) {
	return incrementBy(op, -1)
}

func incrby(op *operation) ([]byte, error) {
	delta, err := parseInt(op.args[2])

	if hasError(err) {
		return nil, err
	}

	return incrementBy(op, delta)
}

func decrby(op *operation) ([]byte, error) {
	delta, err := parseInt(op.args[2])

	if hasError(err) {
		return nil, err
	}

	if delta == math.MinInt64 {
		return nil, ErrOverflow
	}

	return incrementBy(op, -delta)
}

func incrementBy(op *operation, delta int64) ([]byte, error) {
	current, err := op.loadKind(kindString)

	if hasError(err) {
		return nil, err
	}

	var value int64

	if current == nil {
		current = &entry{kind: kindString}
	} else if value, err = parseInt(current.payload); hasError(err) {
		return nil, err
	}

	if overflows(value, delta) {
		return nil, ErrOverflow
	}

	value += delta
	current.payload = strconv.AppendInt(nil, value, 10)

	if err = op.store(current); hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, value), nil
}

func overflows(value, delta int64) bool {
	if delta > 0 {
		return value > math.MaxInt64-delta
	}

	return value < math.MinInt64-delta
}
