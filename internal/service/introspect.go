package service

import (
	"fmt"
	"strings"

	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/attribute"
	"github.com/han-ian/tidis/internal/domain"
)

const entryFields = 6

// introspect serves COMMAND, COMMAND COUNT and COMMAND INFO from the registry.
func introspect(handler *Handler, args Args) *Result {
	result := domain.NewResult()

	if len(args) == 1 {
		names := handler.registry.Names()
		reply := redcon.AppendArray(nil, len(names))

		for _, name := range names {
			attr, _ := handler.registry.Lookup(name)
			reply = appendAttribute(reply, attr)
		}

		return result.SetResponse(reply)
	}

	sub := strings.ToLower(string(args[domain.FirstArg]))

	switch sub {
	case "count":
		return result.SetResponse(redcon.AppendInt(nil, int64(handler.registry.Len())))
	case "info":
		names := args[secondArg:]
		reply := redcon.AppendArray(nil, len(names))

		for _, name := range names {
			attr, exists := handler.registry.Lookup(string(name))

			if !exists {
				reply = redcon.AppendNull(reply)
				continue
			}

			reply = appendAttribute(reply, attr)
		}

		return result.SetResponse(reply)
	}

	return result.SetError(fmt.Errorf("%w '%s'", domain.ErrUnknownSubcommand, sub))
}

func appendAttribute(reply []byte, attr attribute.CommandAttribute) []byte {
	reply = redcon.AppendArray(reply, entryFields)
	reply = redcon.AppendBulkString(reply, attr.Name)
	reply = redcon.AppendInt(reply, int64(attr.Arity))
	reply = redcon.AppendArray(reply, 1)
	reply = redcon.AppendString(reply, string(attr.Flags))
	reply = redcon.AppendInt(reply, int64(attr.FirstKey))
	reply = redcon.AppendInt(reply, int64(attr.LastKey))
	return redcon.AppendInt(reply, int64(attr.Step))
}
