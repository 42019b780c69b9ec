package storage

import "github.com/tidwall/redcon"

func get(op *operation) ([]byte, error) {
	item, err := op.loadKind(kindString)

	if hasError(err) {
		return nil, err
	}

	if item == nil {
		return redcon.AppendNull(nil), nil
	}

	return redcon.AppendBulk(nil, item.payload), nil
}

func strlen(op *operation) ([]byte, error) {
	item, err := op.loadKind(kindString)

	if hasError(err) {
		return nil, err
	}

	if item == nil {
		return redcon.AppendInt(nil, 0), nil
	}

	return redcon.AppendInt(nil, int64(len(item.payload))), nil
}
