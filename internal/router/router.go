package router

import "github.com/spaolacci/murmur3"

const DefaultTables = 16

// Router spreads keys over a fixed number of store tables.
type Router struct {
	tables uint64
}

func New(tables int) *Router {
	if tables < 1 {
		tables = DefaultTables
	}

	return &Router{tables: uint64(tables)}
}

func (router *Router) Route(key []byte) uint64 {
	return murmur3.Sum64(key) % router.tables
}

func (router *Router) Tables() int {
	return int(router.tables)
}
