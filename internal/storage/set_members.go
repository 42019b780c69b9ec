package storage

import (
	"bytes"
	"slices"

	"github.com/tidwall/redcon"
)

// Set members are kept sorted so membership is a binary search and SMEMBERS
// output is deterministic.
func loadSet(op *operation) (*entry, [][]byte, error) {
	item, err := op.loadKind(kindSet)

	if hasError(err) || item == nil {
		return nil, nil, err
	}

	members, err := decodeItems(item.payload)

	if hasError(err) {
		return nil, nil, err
	}

	return item, members, nil
}

func storeSet(op *operation, item *entry, members [][]byte) error {
	if len(members) == 0 {
		return op.remove()
	}

	if item == nil {
		item = &entry{kind: kindSet}
	}

	item.payload = encodeItems(members)

	return op.store(item)
}

func sadd(op *operation) ([]byte, error) {
	item, members, err := loadSet(op)

	if hasError(err) {
		return nil, err
	}

	var added int64

	for _, member := range op.args[2:] {
		position, found := slices.BinarySearchFunc(members, member, bytes.Compare)

		if found {
			continue
		}

		members = slices.Insert(members, position, member)
		added++
	}

	if added > 0 {
		err = storeSet(op, item, members)
	}

	if hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, added), nil
}

func srem(op *operation) ([]byte, error) {
	item, members, err := loadSet(op)

	if hasError(err) {
		return nil, err
	}

	var removed int64

	for _, member := range op.args[2:] {
		position, found := slices.BinarySearchFunc(members, member, bytes.Compare)

		if !found {
			continue
		}

		members = slices.Delete(members, position, position+1)
		removed++
	}

	if removed > 0 {
		err = storeSet(op, item, members)
	}

	if hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, removed), nil
}

func smembers(op *operation) ([]byte, error) {
	_, members, err := loadSet(op)

	if hasError(err) {
		return nil, err
	}

	reply := redcon.AppendArray(nil, len(members))

	for _, member := range members {
		reply = redcon.AppendBulk(reply, member)
	}

	return reply, nil
}

func sismember(op *operation) ([]byte, error) {
	_, members, err := loadSet(op)

	if hasError(err) {
		return nil, err
	}

	if _, found := slices.BinarySearchFunc(members, op.args[2], bytes.Compare); found {
		return redcon.AppendInt(nil, 1), nil
	}

	return redcon.AppendInt(nil, 0), nil
}

func scard(op *operation) ([]byte, error) {
	_, members, err := loadSet(op)

	if hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, int64(len(members))), nil
}
