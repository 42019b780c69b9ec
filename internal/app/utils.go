package app

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/domain"
	"github.com/han-ian/tidis/internal/logger"
)

const (
	nodeID         = 1
	handlerLookups = 10
)

func hasError(err error) bool {
	return err != nil
}

func newNode() *snowflake.Node {
	node, err := snowflake.NewNode(nodeID)

	if hasError(err) {
		logger.Fatal("snowflake node", "error", err)
	}

	return node
}

func handlerExists(handlers map[int64]domain.Dispatcher, connID int64) bool {
	_, exists := handlers[connID]
	return exists
}

// writeResult copies a reply to the connection. Responses are already RESP
// encoded by the dispatcher.
func writeResult(conn redcon.Conn, result *domain.Result) {
	if hasError(result.Error) {
		conn.WriteError(result.Error.Error())
		return
	}

	if result.Response == nil {
		conn.WriteNull()
		return
	}

	conn.WriteRaw(result.Response)
}
