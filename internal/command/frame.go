package command

import (
	"fmt"

	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/domain"
)

type Frame = domain.Frame

// EncodeArray renders a command frame as the RESP array the store expects.
func EncodeArray(frame Frame) ([]byte, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("%w: empty frame", domain.ErrEncoding)
	}

	if len(frame[domain.CommandArg]) == 0 {
		return nil, fmt.Errorf("%w: frame without command name", domain.ErrEncoding)
	}

	size := 16
	for _, arg := range frame {
		size += len(arg) + 16
	}

	request := make([]byte, 0, size)
	request = redcon.AppendArray(request, len(frame))

	for _, arg := range frame {
		request = redcon.AppendBulk(request, arg)
	}

	return request, nil
}
