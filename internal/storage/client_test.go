package storage_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/redcon"

	"github.com/han-ian/tidis/internal/attribute"
	"github.com/han-ian/tidis/internal/storage"
)

var _ = Describe("Client", func() {
	var (
		client  *storage.Client
		ctx     context.Context
		testDir string
		now     time.Time
	)

	BeforeEach(func() {
		var err error
		testDir = createUniqueTestDir("client")
		now = time.UnixMilli(1_700_000_000_000)
		client, err = storage.NewClient(testDir, storage.WithClock(func() time.Time { return now }))
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	AfterEach(func() {
		if client != nil {
			client.Close()
		}
		cleanupTestDir(testDir)
	})

	run := func(args ...string) []byte {
		reply, err := send(ctx, client, 0, args...)
		Expect(err).NotTo(HaveOccurred())
		return reply
	}

	fail := func(args ...string) error {
		_, err := send(ctx, client, 0, args...)
		Expect(err).To(HaveOccurred())
		return err
	}

	Describe("request validation", func() {
		It("rejects a request whose verb differs from the command", func() {
			request := redcon.AppendArray(nil, 2)
			request = redcon.AppendBulk(request, []byte("get"))
			request = redcon.AppendBulk(request, []byte("k"))

			_, err := client.RedisCommand(ctx, 0, []byte("set"), []byte("k"), request)
			Expect(err).To(MatchError(storage.ErrMismatch))
		})

		It("rejects a request whose key differs", func() {
			request := redcon.AppendArray(nil, 2)
			request = redcon.AppendBulk(request, []byte("get"))
			request = redcon.AppendBulk(request, []byte("k"))

			_, err := client.RedisCommand(ctx, 0, []byte("GET"), []byte("other"), request)
			Expect(err).To(MatchError(storage.ErrMismatch))
		})

		It("rejects a truncated request", func() {
			_, err := client.RedisCommand(ctx, 0, []byte("get"), []byte("k"), []byte("*2\r\n$3\r\nget\r\n"))
			Expect(err).To(MatchError(storage.ErrProtocol))
		})

		It("rejects unknown verbs and wrong arity", func() {
			Expect(fail("hset", "k", "f", "v")).To(MatchError(storage.ErrUnknownVerb))
			Expect(fail("get", "k", "extra")).To(MatchError(storage.ErrWrongArgs))
		})

		It("rejects empty and oversized keys", func() {
			Expect(fail("get", "")).To(MatchError(storage.ErrEmptyKey))
			Expect(fail("get", string(make([]byte, storage.MaxKeySize+1)))).To(MatchError(storage.ErrKeyTooLarge))
		})

		It("rejects routing ids beyond the table limit", func() {
			_, err := send(ctx, client, storage.MaxTables, "get", "k")
			Expect(err).To(MatchError(storage.ErrUnknownTable))
		})

		It("returns the context error when canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := send(canceled, client, 0, "get", "k")
			Expect(err).To(MatchError(context.Canceled))
		})

		It("fails once closed", func() {
			client.Close()
			Expect(fail("get", "k")).To(MatchError(storage.ErrClosed))
			client = nil
		})
	})

	Describe("routing tables", func() {
		It("keeps the same key apart across tables", func() {
			_, err := send(ctx, client, 1, "set", "k", "one")
			Expect(err).NotTo(HaveOccurred())
			_, err = send(ctx, client, 2, "set", "k", "two")
			Expect(err).NotTo(HaveOccurred())

			Expect(send(ctx, client, 1, "get", "k")).To(Equal(bulk("one")))
			Expect(send(ctx, client, 2, "get", "k")).To(Equal(bulk("two")))
			Expect(send(ctx, client, 3, "get", "k")).To(Equal(null()))
		})

		It("persists across reopen", func() {
			run("set", "k", "v")
			client.Close()

			var err error
			client, err = storage.NewClient(testDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(run("get", "k")).To(Equal(bulk("v")))
		})
	})

	Describe("strings", func() {
		It("sets and gets", func() {
			Expect(run("get", "k")).To(Equal(null()))
			Expect(run("SET", "k", "v")).To(Equal(ok()))
			Expect(run("get", "k")).To(Equal(bulk("v")))
			Expect(run("strlen", "k")).To(Equal(integer(1)))
		})

		It("honours NX and XX", func() {
			Expect(run("set", "k", "v", "xx")).To(Equal(null()))
			Expect(run("set", "k", "v", "nx")).To(Equal(ok()))
			Expect(run("set", "k", "w", "NX")).To(Equal(null()))
			Expect(run("set", "k", "w", "XX")).To(Equal(ok()))
			Expect(run("get", "k")).To(Equal(bulk("w")))
			Expect(fail("set", "k", "v", "nx", "xx")).To(MatchError(storage.ErrSyntax))
			Expect(fail("set", "k", "v", "bogus")).To(MatchError(storage.ErrSyntax))
		})

		It("expires values set with EX and PX", func() {
			run("set", "a", "1", "ex", "10")
			run("set", "b", "1", "px", "500")
			Expect(run("pttl", "b")).To(Equal(integer(500)))

			now = now.Add(time.Second)
			Expect(run("get", "a")).To(Equal(bulk("1")))
			Expect(run("get", "b")).To(Equal(null()))
			Expect(run("ttl", "a")).To(Equal(integer(9)))
			Expect(fail("set", "a", "1", "ex", "0")).To(MatchError(storage.ErrExpireTime))
		})

		It("keeps the ttl with KEEPTTL", func() {
			run("set", "k", "v", "ex", "10")
			run("set", "k", "w", "keepttl")
			Expect(run("ttl", "k")).To(Equal(integer(10)))

			run("set", "k", "x")
			Expect(run("ttl", "k")).To(Equal(integer(-1)))
		})

		It("supports setnx, getset and append", func() {
			Expect(run("setnx", "k", "a")).To(Equal(integer(1)))
			Expect(run("setnx", "k", "b")).To(Equal(integer(0)))
			Expect(run("getset", "k", "c")).To(Equal(bulk("a")))
			Expect(run("getset", "n", "c")).To(Equal(null()))
			Expect(run("append", "k", "de")).To(Equal(integer(3)))
			Expect(run("get", "k")).To(Equal(bulk("cde")))
		})

		It("increments and decrements", func() {
			Expect(run("incr", "n")).To(Equal(integer(1)))
			Expect(run("incrby", "n", "10")).To(Equal(integer(11)))
			Expect(run("decr", "n")).To(Equal(integer(10)))
			Expect(run("decrby", "n", "15")).To(Equal(integer(-5)))
			Expect(run("get", "n")).To(Equal(bulk("-5")))
		})

		It("rejects non integers and overflow", func() {
			run("set", "s", "abc")
			Expect(fail("incr", "s")).To(MatchError(storage.ErrNotInteger))
			Expect(fail("incrby", "n", "x")).To(MatchError(storage.ErrNotInteger))

			run("set", "max", "9223372036854775807")
			Expect(fail("incr", "max")).To(MatchError(storage.ErrOverflow))
			Expect(fail("decrby", "n", "-9223372036854775808")).To(MatchError(storage.ErrOverflow))
		})
	})

	Describe("keys", func() {
		It("deletes and checks existence", func() {
			run("set", "k", "v")
			Expect(run("exists", "k")).To(Equal(integer(1)))
			Expect(run("del", "k")).To(Equal(integer(1)))
			Expect(run("unlink", "k")).To(Equal(integer(0)))
			Expect(run("exists", "k")).To(Equal(integer(0)))
		})

		It("reports the type", func() {
			run("set", "s", "v")
			run("rpush", "l", "v")
			run("sadd", "z", "v")
			Expect(run("type", "s")).To(Equal(redcon.AppendString(nil, "string")))
			Expect(run("type", "l")).To(Equal(redcon.AppendString(nil, "list")))
			Expect(run("type", "z")).To(Equal(redcon.AppendString(nil, "set")))
			Expect(run("type", "none")).To(Equal(redcon.AppendString(nil, "none")))
		})

		It("manages expiry", func() {
			Expect(run("expire", "k", "10")).To(Equal(integer(0)))
			Expect(run("ttl", "k")).To(Equal(integer(-2)))

			run("set", "k", "v")
			Expect(run("ttl", "k")).To(Equal(integer(-1)))
			Expect(run("expire", "k", "10")).To(Equal(integer(1)))
			Expect(run("pttl", "k")).To(Equal(integer(10_000)))
			Expect(run("persist", "k")).To(Equal(integer(1)))
			Expect(run("persist", "k")).To(Equal(integer(0)))

			Expect(run("pexpire", "k", "100")).To(Equal(integer(1)))
			now = now.Add(100 * time.Millisecond)
			Expect(run("exists", "k")).To(Equal(integer(0)))
		})

		It("rejects expiries past the end of time", func() {
			run("set", "k", "v", "ex", "10")

			Expect(fail("set", "k", "w", "ex", "9223372036854775807")).To(MatchError(storage.ErrExpireTime))
			Expect(fail("set", "k", "w", "px", "9223372036854775807")).To(MatchError(storage.ErrExpireTime))
			Expect(fail("expire", "k", "9223372036854775")).To(MatchError(storage.ErrExpireTime))
			Expect(fail("pexpire", "k", "9223372036854775807")).To(MatchError(storage.ErrExpireTime))

			Expect(run("get", "k")).To(Equal(bulk("v")))
			Expect(run("ttl", "k")).To(Equal(integer(10)))
		})

		It("deletes the key for a non positive expiry", func() {
			run("set", "k", "v")
			Expect(run("expire", "k", "0")).To(Equal(integer(1)))
			Expect(run("get", "k")).To(Equal(null()))
		})
	})

	Describe("lists", func() {
		It("pushes and ranges", func() {
			Expect(run("lpush", "l", "a", "b")).To(Equal(integer(2)))
			Expect(run("rpush", "l", "c")).To(Equal(integer(3)))
			Expect(run("lrange", "l", "0", "-1")).To(Equal(array("b", "a", "c")))
			Expect(run("lrange", "l", "1", "1")).To(Equal(array("a")))
			Expect(run("lrange", "l", "5", "10")).To(Equal(array()))
			Expect(run("llen", "l")).To(Equal(integer(3)))
		})

		It("indexes and sets", func() {
			run("rpush", "l", "a", "b", "c")
			Expect(run("lindex", "l", "-1")).To(Equal(bulk("c")))
			Expect(run("lindex", "l", "3")).To(Equal(null()))
			Expect(run("lset", "l", "1", "x")).To(Equal(ok()))
			Expect(run("lindex", "l", "1")).To(Equal(bulk("x")))
			Expect(fail("lset", "l", "9", "x")).To(MatchError(storage.ErrOutOfRange))
			Expect(fail("lset", "missing", "0", "x")).To(MatchError(storage.ErrNoSuchKey))
		})

		It("pops until the key disappears", func() {
			run("rpush", "l", "a", "b")
			Expect(run("lpop", "l")).To(Equal(bulk("a")))
			Expect(run("rpop", "l")).To(Equal(bulk("b")))
			Expect(run("rpop", "l")).To(Equal(null()))
			Expect(run("exists", "l")).To(Equal(integer(0)))
		})

		It("rejects the wrong type", func() {
			run("set", "s", "v")
			Expect(fail("lpush", "s", "a")).To(MatchError(storage.ErrWrongType))
		})
	})

	Describe("sets", func() {
		It("adds, removes and lists sorted members", func() {
			Expect(run("sadd", "z", "b", "a", "b")).To(Equal(integer(2)))
			Expect(run("sadd", "z", "a")).To(Equal(integer(0)))
			Expect(run("smembers", "z")).To(Equal(array("a", "b")))
			Expect(run("sismember", "z", "a")).To(Equal(integer(1)))
			Expect(run("sismember", "z", "c")).To(Equal(integer(0)))
			Expect(run("scard", "z")).To(Equal(integer(2)))
			Expect(run("srem", "z", "a", "c")).To(Equal(integer(1)))
			Expect(run("srem", "z", "b")).To(Equal(integer(1)))
			Expect(run("exists", "z")).To(Equal(integer(0)))
			Expect(run("smembers", "z")).To(Equal(array()))
		})

		It("rejects the wrong type", func() {
			run("rpush", "l", "a")
			Expect(fail("sadd", "l", "a")).To(MatchError(storage.ErrWrongType))
			Expect(fail("get", "l")).To(MatchError(storage.ErrWrongType))
		})
	})

	Describe("registered commands", func() {
		It("executes every registered single-key command", func() {
			registry, err := attribute.Default()
			Expect(err).NotTo(HaveOccurred())
			Expect(storage.Verbs()).To(ContainElements(registry.SingleKeyCommands()))
		})

		It("opens a read transaction for commands flagged readonly", func() {
			registry, err := attribute.NewRegistry([]attribute.CommandAttribute{
				{Name: "get", Arity: 2, Flags: attribute.Readonly, FirstKey: 1, LastKey: 1, Step: 1},
				{Name: "set", Arity: -3, Flags: attribute.Readonly, FirstKey: 1, LastKey: 1, Step: 1},
			}, nil)
			Expect(err).NotTo(HaveOccurred())

			readonlyDir := createUniqueTestDir("readonly")
			defer cleanupTestDir(readonlyDir)

			readonly, err := storage.NewClient(readonlyDir, storage.WithRegistry(registry))
			Expect(err).NotTo(HaveOccurred())
			defer readonly.Close()

			_, err = send(ctx, readonly, 0, "set", "k", "v")
			Expect(err).To(HaveOccurred())

			Expect(send(ctx, readonly, 0, "get", "k")).To(Equal(null()))
		})
	})
})
