package service

import (
	"bytes"
	"strconv"

	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/domain"
)

// mergeReplies folds the replies of a decomposed command into one: all OK
// stays OK, all integers are summed, anything else becomes an array in
// sub-command order.
func mergeReplies(replies [][]byte) ([]byte, error) {
	if allOK(replies) {
		return domain.OK, nil
	}

	total, integers, err := sumIntegers(replies)

	if hasError(err) {
		return nil, err
	}

	if integers {
		return redcon.AppendInt(nil, total), nil
	}

	merged := redcon.AppendArray(nil, len(replies))

	for _, reply := range replies {
		merged = append(merged, reply...)
	}

	return merged, nil
}

func allOK(replies [][]byte) bool {
	for _, reply := range replies {
		if !bytes.Equal(reply, domain.OK) {
			return false
		}
	}

	return true
}

func sumIntegers(replies [][]byte) (int64, bool, error) {
	var total int64

	for _, reply := range replies {
		size, resp := redcon.ReadNextRESP(reply)

		if size == 0 {
			return 0, false, domain.ErrEncoding
		}

		if resp.Type != redcon.Integer {
			return 0, false, nil
		}

		value, err := strconv.ParseInt(string(resp.Data), 10, 64)

		if hasError(err) {
			return 0, false, domain.ErrEncoding
		}

		total += value
	}

	return total, true, nil
}
