package attribute

var defaultAttributes = []CommandAttribute{
	{Name: "append", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "decr", Arity: 2, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "decrby", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "get", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "getset", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "incr", Arity: 2, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "incrby", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "set", Arity: -3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "setnx", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "strlen", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},

	{Name: "expire", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "persist", Arity: 2, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "pexpire", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "pttl", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "ttl", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "type", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},

	{Name: "lindex", Arity: 3, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "llen", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "lpop", Arity: 2, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "lpush", Arity: -3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "lrange", Arity: 4, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "lset", Arity: 4, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "rpop", Arity: 2, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "rpush", Arity: -3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},

	{Name: "sadd", Arity: -3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "scard", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "sismember", Arity: 3, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "smembers", Arity: 2, Flags: Readonly, FirstKey: 1, LastKey: 1, Step: 1},
	{Name: "srem", Arity: -3, Flags: Write, FirstKey: 1, LastKey: 1, Step: 1},

	{Name: "del", Arity: -2, Flags: Write, FirstKey: 1, LastKey: -1, Step: 1},
	{Name: "exists", Arity: -2, Flags: Readonly, FirstKey: 1, LastKey: -1, Step: 1},
	{Name: "mget", Arity: -2, Flags: Readonly, FirstKey: 1, LastKey: -1, Step: 1},
	{Name: "mset", Arity: -3, Flags: Write, FirstKey: 1, LastKey: -1, Step: 2},
	{Name: "unlink", Arity: -2, Flags: Write, FirstKey: 1, LastKey: -1, Step: 1},

	{Name: "rename", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 2, Step: 1},
	{Name: "renamenx", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 2, Step: 1},
	{Name: "rpoplpush", Arity: 3, Flags: Write, FirstKey: 1, LastKey: 2, Step: 1},
	{Name: "smove", Arity: 4, Flags: Write, FirstKey: 1, LastKey: 2, Step: 1},

	{Name: "command", Arity: -1, Flags: Readonly, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "dbsize", Arity: 1, Flags: Readonly, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "discard", Arity: 1, Flags: Readonly, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "exec", Arity: 1, Flags: Write, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "flushall", Arity: -1, Flags: Write, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "flushdb", Arity: -1, Flags: Write, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "info", Arity: -1, Flags: Readonly, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "multi", Arity: 1, Flags: Readonly, FirstKey: 0, LastKey: 0, Step: 0},
	{Name: "ping", Arity: -1, Flags: Readonly, FirstKey: 0, LastKey: 0, Step: 0},
}

// The store only understands single-key verbs, so batch aliases are
// rewritten to them before their key groups are split.
var defaultRewrites = map[string]string{
	"mget": "get",
	"mset": "set",
}

// Default builds the registry of every command the server understands.
// A non-nil error means the table itself is broken.
func Default() (*Registry, error) {
	return NewRegistry(defaultAttributes, defaultRewrites)
}

func DefaultAttributes() []CommandAttribute {
	return append([]CommandAttribute(nil), defaultAttributes...)
}

func DefaultRewrites() map[string]string {
	rewrites := make(map[string]string, len(defaultRewrites))

	for from, to := range defaultRewrites {
		rewrites[from] = to
	}

	return rewrites
}
