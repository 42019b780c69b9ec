package storage

import (
	"encoding/binary"
	"slices"
)

type kind = byte

const (
	kindString kind = iota + 1
	kindList
	kindSet
)

const (
	noExpire       = 0
	headerSize     = 1
	integerSize    = 8
	itemLengthSize = 4
)

var kindNames = map[kind]string{
	kindString: "string",
	kindList:   "list",
	kindSet:    "set",
}

// entry is the stored form of a key: a type byte, a varint expiry in unix
// milliseconds (zero means persistent) and the payload.
type entry struct {
	kind     kind
	expireAt int64
	payload  []byte
}

func (item *entry) encode() []byte {
	buf := make([]byte, headerSize+binary.MaxVarintLen64, headerSize+binary.MaxVarintLen64+len(item.payload))
	buf[0] = item.kind
	index := headerSize
	index += binary.PutVarint(buf[index:], item.expireAt)
	return append(buf[:index], item.payload...)
}

func (item *entry) expired(now int64) bool {
	return item.expireAt > noExpire && item.expireAt <= now
}

func decodeEntry(data []byte) (*entry, error) {
	if len(data) < headerSize+1 {
		return nil, ErrCorrupted
	}

	if _, known := kindNames[data[0]]; !known {
		return nil, ErrCorrupted
	}

	expireAt, n := binary.Varint(data[headerSize:])

	if n <= 0 {
		return nil, ErrCorrupted
	}

	return &entry{
		kind:     data[0],
		expireAt: expireAt,
		payload:  slices.Clone(data[headerSize+n:]),
	}, nil
}

// encodeItems writes a count followed by length-prefixed items; lists and
// sets share the layout.
func encodeItems(items [][]byte) []byte {
	size := integerSize

	for _, item := range items {
		size += itemLengthSize + len(item)
	}

	buf := make([]byte, integerSize, size)
	binary.LittleEndian.PutUint64(buf, uint64(len(items)))

	for _, item := range items {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(item)))
		buf = append(buf, item...)
	}

	return buf
}

func decodeItems(data []byte) ([][]byte, error) {
	if len(data) < integerSize {
		return nil, ErrCorrupted
	}

	count := binary.LittleEndian.Uint64(data[:integerSize])
	offset := integerSize
	items := make([][]byte, 0, min(count, uint64(len(data))))

	for range count {
		if offset+itemLengthSize > len(data) {
			return nil, ErrCorrupted
		}

		itemLen := int(binary.LittleEndian.Uint32(data[offset:]))
		offset += itemLengthSize

		if offset+itemLen > len(data) {
			return nil, ErrCorrupted
		}

		items = append(items, data[offset:offset+itemLen])
		offset += itemLen
	}

	return items, nil
}
