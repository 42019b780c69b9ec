package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PowerDNS/lmdb-go/lmdb"
	"github.com/tidwall/redcon"
)

type (
	handler func(op *operation) ([]byte, error)

	verb struct {
		arity int
		run   handler
	}
)

var verbs = map[string]verb{
	"get":       {arity: 2, run: get},
	"set":       {arity: -3, run: set},
	"setnx":     {arity: 3, run: setnx},
	"getset":    {arity: 3, run: getset},
	"append":    {arity: 3, run: appendValue},
	"strlen":    {arity: 2, run: strlen},
	"incr":      {arity: 2, run: incr},
	"incrby":    {arity: 3, run: incrby},
	"decr":      {arity: 2, run: decr},
	"decrby":    {arity: 3, run: decrby},
	"del":       {arity: 2, run: del},
	"unlink":    {arity: 2, run: del},
	"exists":    {arity: 2, run: exists},
	"type":      {arity: 2, run: typeOf},
	"expire":    {arity: 3, run: expire},
	"pexpire":   {arity: 3, run: pexpire},
	"ttl":       {arity: 2, run: ttl},
	"pttl":      {arity: 2, run: pttl},
	"persist":   {arity: 2, run: persist},
	"lpush":     {arity: -3, run: lpush},
	"rpush":     {arity: -3, run: rpush},
	"lpop":      {arity: 2, run: lpop},
	"rpop":      {arity: 2, run: rpop},
	"llen":      {arity: 2, run: llen},
	"lindex":    {arity: 3, run: lindex},
	"lrange":    {arity: 4, run: lrange},
	"lset":      {arity: 4, run: lset},
	"sadd":      {arity: -3, run: sadd},
	"srem":      {arity: -3, run: srem},
	"smembers":  {arity: 2, run: smembers},
	"sismember": {arity: 3, run: sismember},
	"scard":     {arity: 2, run: scard},
}

// Verbs lists the commands the store executes.
func Verbs() []string {
	names := make([]string, 0, len(verbs))

	for name := range verbs {
		names = append(names, name)
	}

	return names
}

// RedisCommand executes one RESP encoded single-key request against the
// table of routingID and returns the RESP encoded reply. Commands the
// registry flags readonly run in a read transaction.
func (client *Client) RedisCommand(ctx context.Context, routingID uint64, cmd, key, request []byte) ([]byte, error) {
	args, found, err := decodeRequest(ctx, cmd, key, request)

	if hasError(err) {
		return nil, err
	}

	dbi, err := client.table(routingID)

	if hasError(err) {
		return nil, err
	}

	env, err := client.environment()

	if hasError(err) {
		return nil, err
	}

	var reply []byte

	run := func(txn *lmdb.Txn) error {
		var runErr error
		reply, runErr = found.run(&operation{
			table: &lmdbBucket{txn: txn, dbi: dbi},
			key:   args[1],
			args:  args,
			now:   client.now(),
		})
		return runErr
	}

	if client.registry.IsWriteCommand(strings.ToLower(string(cmd))) {
		err = env.Update(run)
	} else {
		err = env.View(run)
	}

	if hasError(err) {
		return nil, err
	}

	return reply, nil
}

func decodeRequest(ctx context.Context, cmd, key, request []byte) ([][]byte, verb, error) {
	if err := ctxFlush(ctx); hasError(err) {
		return nil, verb{}, err
	}

	complete, args, _, _, err := redcon.ReadNextCommand(request, nil)

	if hasError(err) {
		return nil, verb{}, fmt.Errorf("%w: %s", ErrProtocol, err)
	}

	if !complete || len(args) == 0 {
		return nil, verb{}, ErrProtocol
	}

	if !bytes.EqualFold(args[0], cmd) {
		return nil, verb{}, fmt.Errorf("%w: '%s' != '%s'", ErrMismatch, args[0], cmd)
	}

	name := strings.ToLower(string(args[0]))
	found, exists := verbs[name]

	if !exists {
		return nil, verb{}, fmt.Errorf("%w '%s'", ErrUnknownVerb, name)
	}

	if !validArity(found.arity, len(args)) {
		return nil, verb{}, fmt.Errorf("%w for '%s'", ErrWrongArgs, name)
	}

	if !bytes.Equal(args[1], key) {
		return nil, verb{}, fmt.Errorf("%w: key '%s' != '%s'", ErrMismatch, args[1], key)
	}

	if err = validateKey(key); hasError(err) {
		return nil, verb{}, err
	}

	return args, found, nil
}

func validArity(arity, count int) bool {
	if arity < 0 {
		return count >= -arity
	}

	return count == arity
}
