package storage

import "github.com/tidwall/redcon"

const (
	missingKey = -2
	persistent = -1
)

func expire(op *operation) ([]byte, error) {
	return expireIn(op, 1000)
}

func pexpire(op *operation) ([]byte, error) {
	return expireIn(op, 1)
}

func expireIn(op *operation, unit int64) ([]byte, error) {
	amount, err := parseInt(op.args[2])

	if hasError(err) {
		return nil, err
	}

	var expireAt int64

	if amount > 0 {
		expireAt, err = deadline(op.now, amount, unit)
	}

	if hasError(err) {
		return nil, err
	}

	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	if current == nil {
		return redcon.AppendInt(nil, 0), nil
	}

	if amount <= 0 {
		err = op.remove()
	} else {
		current.expireAt = expireAt
		err = op.store(current)
	}

	if hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, 1), nil
}

func ttl(op *operation) ([]byte, error) {
	return remaining(op, 1000)
}

func pttl(op *operation) ([]byte, error) {
	return remaining(op, 1)
}

func remaining(op *operation, unit int64) ([]byte, error) {
	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	switch {
	case current == nil:
		return redcon.AppendInt(nil, missingKey), nil
	case current.expireAt == noExpire:
		return redcon.AppendInt(nil, persistent), nil
	}

	left := current.expireAt - op.now

	return redcon.AppendInt(nil, (left+unit-1)/unit), nil
}

func persist(op *operation) ([]byte, error) {
	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	if current == nil || current.expireAt == noExpire {
		return redcon.AppendInt(nil, 0), nil
	}

	current.expireAt = noExpire

	if err = op.store(current); hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, 1), nil
}
