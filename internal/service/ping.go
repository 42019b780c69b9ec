package service

import (
	"fmt"

	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/domain"
)

func ping(_ *Handler, args Args) *Result {
	result := domain.NewResult()

	switch len(args) {
	case 1:
		return result.SetResponse(domain.PONG)
	case 2:
		return result.SetResponse(redcon.AppendBulk(nil, args[domain.FirstArg]))
	}

	return result.SetError(fmt.Errorf("%w for 'ping' command", domain.ErrMalformedArguments))
}
