package app

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/domain"
	"github.com/han-ian/tidis/internal/logger"
)

type (
	Server struct {
		rcon     *redcon.Server
		node     *snowflake.Node
		handlers map[int64]domain.Dispatcher
		poolHdlr domain.Logicaler
		mutex    sync.RWMutex
	}

	Config struct {
		Address string
	}
)

func NewServer(pool domain.Logicaler) *Server {
	return &Server{
		node:     newNode(),
		handlers: make(map[int64]domain.Dispatcher),
		poolHdlr: pool,
	}
}

func (server *Server) Start(config Config) error {
	server.mutex.Lock()
	server.rcon = redcon.NewServer(
		config.Address,
		server.OnHandler,
		server.OnAccept,
		server.OnClosed,
	)
	rcon := server.rcon
	server.mutex.Unlock()

	logger.Info("server listening", "address", config.Address)

	return rcon.ListenAndServe()
}

func (server *Server) OnHandler(conn redcon.Conn, cmd redcon.Command) {
	ctx, ok := conn.Context().(context.Context)
	if !ok {
		conn.WriteError("ERR invalid connection context")
		return
	}

	connID, ok := ctx.Value(domain.ID).(int64)
	if !ok {
		conn.WriteError("ERR invalid connection ID")
		return
	}

	var handler domain.Dispatcher

	for range handlerLookups {
		handler = server.getHandler(connID)

		if handler != nil {
			break
		}

		time.Sleep(time.Millisecond)
	}

	if handler == nil {
		conn.WriteError("ERR connection not found")
		return
	}

	for _, item := range handler.Apply(ctx, cmd.Args) {
		writeResult(conn, item)
	}
}

func (server *Server) getHandler(connID int64) domain.Dispatcher {
	server.mutex.RLock()
	defer server.mutex.RUnlock()
	return server.handlers[connID]
}

func (server *Server) OnAccept(conn redcon.Conn) bool {
	connID := server.node.Generate().Int64()
	ctx := context.WithValue(context.Background(), domain.ID, connID)

	conn.SetContext(ctx)

	server.mutex.Lock()
	server.handlers[connID] = server.poolHdlr.Get(ctx)
	server.mutex.Unlock()

	logger.Debug("connection accepted", "conn", connID)

	return true
}

func (server *Server) OnClosed(conn redcon.Conn, err error) {
	ctx, ok := conn.Context().(context.Context)
	if !ok {
		return
	}

	connID, ok := ctx.Value(domain.ID).(int64)
	if !ok {
		return
	}

	server.mutex.Lock()
	defer server.mutex.Unlock()

	if handlerExists(server.handlers, connID) {
		dispatcher := server.handlers[connID]
		delete(server.handlers, connID)
		server.poolHdlr.Free(dispatcher)
	}

	if hasError(err) {
		logger.Debug("connection closed", "conn", connID, "error", err)
	}
}

func (server *Server) Close() {
	server.mutex.Lock()
	defer server.mutex.Unlock()

	for _, handler := range server.handlers {
		handler.Clear()
	}

	server.handlers = make(map[int64]domain.Dispatcher)

	if server.rcon != nil {
		server.rcon.Close()
		server.rcon = nil
	}
}
