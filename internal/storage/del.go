package storage

import "github.com/tidwall/redcon"

func del(op *operation) ([]byte, error) {
	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	if current == nil {
		return redcon.AppendInt(nil, 0), nil
	}

	if err = op.remove(); hasError(err) {
		return nil, err
	}

	return redcon.AppendInt(nil, 1), nil
}

func exists(op *operation) ([]byte, error) {
	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	if current == nil {
		return redcon.AppendInt(nil, 0), nil
	}

	return redcon.AppendInt(nil, 1), nil
}

func typeOf(op *operation) ([]byte, error) {
	current, err := op.load()

	if hasError(err) {
		return nil, err
	}

	if current == nil {
		return redcon.AppendString(nil, "none"), nil
	}

	return redcon.AppendString(nil, kindNames[current.kind]), nil
}
