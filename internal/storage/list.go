package storage

import (
	"slices"

	"github.com/tidwall/redcon"
)

func loadList(op *operation) (*entry, [][]byte, error) {
	item, err := op.loadKind(kindList)

	if hasError(err) || item == nil {
		return nil, nil, err
	}

	values, err := decodeItems(item.payload)

	if hasError(err) {
		return nil, nil, err
	}

	return item, values, nil
}

// storeList removes the key once the list is empty.
func storeList(op *operation, item *entry, values [][]byte) error {
	if len(values) == 0 {
		return op.remove()
	}

	if item == nil {
		item = &entry{kind: kindList}
	}

	item.payload = encodeItems(values)

	return op.store(item)
}

func lpush(op *operation) ([]byte, error) {
	item, values, err := loadList(op)

	if hasError(err) {
		return nil, err
	}

	pushed := slices.Clone(op.args[2:])
	slices.Reverse(pushed)
	values = append(pushed, values...)

	if err = storeList(op, item, values); hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, int64(len(values))), nil
}

func rpush(op *operation) ([]byte, error) {
	item, values, err := loadList(op)

	if hasError(err) {
		return nil, err
	}

	values = append(values, op.args[2:]...)

	if err = storeList(op, item, values); hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, int64(len(values))), nil
}

func lpop(op *operation) ([]byte, error) {
	return pop(op, true)
}

func rpop(op *operation) ([]byte, error) {
	return pop(op, false)
}

func pop(op *operation, head bool) ([]byte, error) {
	item, values, err := loadList(op)

	if hasError(err) {
		return nil, err
	}

	if len(values) == 0 {
		return redcon.AppendNull(nil), nil
	}

	var popped []byte

	if head {
		popped, values = values[0], values[1:]
	} else {
		popped, values = values[len(values)-1], values[:len(values)-1]
	}

	reply := redcon.AppendBulk(nil, popped)

	if err = storeList(op, item, values); hasError(err) {
		return nil, err
	}

	return reply, nil
}

func llen(op *operation) ([]byte, error) {
	_, values, err := loadList(op)

	if hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, int64(len(values))), nil
}

func lindex(op *operation) ([]byte, error) {
	index, err := parseInt(op.args[2])

	if hasError(err) {
		return nil, err
	}

	_, values, err := loadList(op)

	if hasError(err) {
		return nil, err
	}

	position, inside := normalizeIndex(index, len(values))

	if !inside {
		return redcon.AppendNull(nil), nil
	}

	return redcon.AppendBulk(nil, values[position]), nil
}

func lrange(op *operation) ([]byte, error) {
	start, err := parseInt(op.args[2])

	if hasError(err) {
		return nil, err
	}

	stop, err := parseInt(op.args[3])

	if hasError(err) {
		return nil, err
	}

	_, values, err := loadList(op)

	if hasError(err) {
		return nil, err
	}

	window := clampRange(values, start, stop)
	reply := redcon.AppendArray(nil, len(window))

	for _, value := range window {
		reply = redcon.AppendBulk(reply, value)
	}

	return reply, nil
}

func lset(op *operation) ([]byte, error) {
	index, err := parseInt(op.args[2])

	if hasError(err) {
		return nil, err
	}

	item, values, err := loadList(op)

	if hasError(err) {
		return nil, err
	}

	if item == nil {
		return nil, ErrNoSuchKey
	}

	position, inside := normalizeIndex(index, len(values))

	if !inside {
		return nil, ErrOutOfRange
	}

	values[position] = op.args[3]

	if err = storeList(op, item, values); hasError(err) {
		return nil, err
	}

	return redcon.AppendOK(nil), nil
}

func normalizeIndex(index int64, length int) (int, bool) {
	if index < 0 {
		index += int64(length)
	}

	if index < 0 || index >= int64(length) {
		return 0, false
	}

	return int(index), true
}

func clampRange(values [][]byte, start, stop int64) [][]byte {
	size := int64(len(values))

	if start < 0 {
		start = max(start+size, 0)
	}

	if stop < 0 {
		stop += size
	}

	stop = min(stop, size-1)

	if start > stop || start >= size {
		return nil
	}

	return values[start : stop+1]
}
