package command

import (
	"context"

	"github.com/han-ian/tidis/internal/domain"
)

// Mix is one incoming request ready for execution: the command bytes, its
// decoded keys and the frame it was parsed from.
type Mix struct {
	cmd   []byte
	keys  []string
	valid bool
	frame Frame
}

func NewInvalid() *Mix {
	return &Mix{
		cmd:   []byte{},
		keys:  []string{},
		valid: false,
		frame: Frame{},
	}
}

// ParseFrames consumes every element left in parse as a key.
func ParseFrames(cmd []byte, parse *Parse) *Mix {
	mix := &Mix{
		cmd:   cmd,
		keys:  make([]string, 0),
		valid: true,
		frame: parse.Frame(),
	}

	for {
		key, err := parse.NextString()

		if hasError(err) {
			break
		}

		mix.AddKey(key)
	}

	return mix
}

// ParseArgv builds a Mix from an argument vector: argv[0] is the command
// and every later element is kept as a key, decoded lossily. The command
// name is never a key, so RoutingKey is the raw argv[1].
func ParseArgv(argv [][]byte) *Mix {
	if len(argv) == 0 {
		return NewInvalid()
	}

	keys := make([]string, 0, len(argv)-1)

	for _, arg := range argv[domain.FirstArg:] {
		keys = append(keys, lossy(arg))
	}

	return &Mix{
		cmd:   argv[domain.CommandArg],
		keys:  keys,
		valid: true,
		frame: argv,
	}
}

func (mix *Mix) Keys() []string {
	return append([]string(nil), mix.keys...)
}

func (mix *Mix) AddKey(key string) {
	mix.keys = append(mix.keys, key)
}

func (mix *Mix) Cmd() []byte {
	return mix.cmd
}

func (mix *Mix) Valid() bool {
	return mix.valid
}

func (mix *Mix) Frame() Frame {
	return mix.frame
}

// RoutingKey is the raw first key of the frame, used to address the store.
func (mix *Mix) RoutingKey() []byte {
	if len(mix.frame) <= domain.FirstArg {
		return nil
	}

	return mix.frame[domain.FirstArg]
}

// Execute runs the command against the partition of its routing key.
func (mix *Mix) Execute(ctx context.Context, executor *Executor, router domain.Router, txn *SharedTxn) ([]byte, error) {
	if !mix.valid {
		return nil, domain.ErrEmpty
	}

	key := mix.RoutingKey()

	return executor.Execute(ctx, router.Route(key), mix.cmd, key, mix.frame, txn)
}

func hasError(err error) bool {
	return err != nil
}
