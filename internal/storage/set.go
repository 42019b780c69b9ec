package storage

import (
	"strings"

	"github.com/tidwall/redcon"
)

type setOptions struct {
	onlyIfMissing bool
	onlyIfExists  bool
	keepTTL       bool
	expireAt      int64
}

func set(op *operation) ([]byte, error) {
	opts, err := parseSetOptions(op)

	if hasError(err) {
		return nil, err
	}

	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	if opts.onlyIfMissing && current != nil {
		return redcon.AppendNull(nil), nil
	}

	if opts.onlyIfExists && current == nil {
		return redcon.AppendNull(nil), nil
	}

	expireAt := opts.expireAt

	if opts.keepTTL && current != nil {
		expireAt = current.expireAt
	}

	err = op.store(&entry{kind: kindString, expireAt: expireAt, payload: op.arg(2)})

	if hasError(err) {
		return nil, err
	}

	return redcon.AppendOK(nil), nil
}

func parseSetOptions(op *operation) (setOptions, error) {
	var opts setOptions
	expiry := false

	for index := 3; index < len(op.args); index++ {
		switch strings.ToLower(string(op.args[index])) {
		case "nx":
			opts.onlyIfMissing = true
		case "xx":
			opts.onlyIfExists = true
		case "keepttl":
			opts.keepTTL = true
		case "ex", "px":
			if expiry || index+1 >= len(op.args) {
				return opts, ErrSyntax
			}

			amount, err := parseInt(op.args[index+1])

			if hasError(err) {
				return opts, err
			}

			if amount <= 0 {
				return opts, ErrExpireTime
			}

			unit := int64(1)

			if strings.EqualFold(string(op.args[index]), "ex") {
				unit = 1000
			}

			opts.expireAt, err = deadline(op.now, amount, unit)

			if hasError(err) {
				return opts, err
			}

			expiry = true
			index++
		default:
			return opts, ErrSyntax
		}
	}

	if opts.onlyIfMissing && opts.onlyIfExists {
		return opts, ErrSyntax
	}

	if opts.keepTTL && expiry {
		return opts, ErrSyntax
	}

	return opts, nil
}

func setnx(op *operation) ([]byte, error) {
	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	if current != nil {
		return redcon.AppendInt(nil, 0), nil
	}

	err = op.store(&entry{kind: kindString, payload: op.arg(2)})

	if hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, 1), nil
}

func getset(op *operation) ([]byte, error) {
	current, err := op.loadKind(kindString)

	if hasError(err) {
		return nil, err
	}

	err = op.store(&entry{kind: kindString, payload: op.arg(2)})

	if hasError(err) {
		return nil, err
	}

	if current == nil {
		return redcon.AppendNull(nil), nil
	}

	return redcon.AppendBulk(nil, current.payload), nil
}

func appendValue(op *operation) ([]byte, error) {
	current, err := op.loadKind(kindString)

	if hasError(err) {
		return nil, err
	}

	if current == nil {
		current = &entry{kind: kindString}
	}

	current.payload = append(current.payload, op.args[2]...)

	if err = op.store(current); hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, int64(len(current.payload))), nil
}
