package attribute

import (
	"fmt"
	"strings"

	"github.com/han-ian/tidis/internal/domain"
)

// Decomposition holds exactly one non-empty field: the command to forward as
// received, or one sub-command per key group.
type Decomposition struct {
	Passthrough [][]byte
	SubCommands [][][]byte
}

func (decomposition Decomposition) IsPassthrough() bool {
	return len(decomposition.SubCommands) == 0
}

// Commands returns the store-bound commands in stride order, a passthrough
// counts as a single command.
func (decomposition Decomposition) Commands() [][][]byte {
	if decomposition.IsPassthrough() {
		return [][][]byte{decomposition.Passthrough}
	}

	return decomposition.SubCommands
}

func (registry *Registry) Split(argv [][]byte) (Decomposition, error) {
	if len(argv) == 0 {
		return Decomposition{}, domain.ErrEmpty
	}

	name := string(argv[domain.CommandArg])
	attr, exists := registry.Lookup(name)

	if !exists {
		return Decomposition{}, fmt.Errorf("%w '%s'", domain.ErrCommandNotFound, name)
	}

	multi := append([][]byte(nil), argv...)

	if target, rewrite := registry.RewriteTarget(name); rewrite {
		multi[domain.CommandArg] = target
	}

	switch registry.shapes[attr.Name] {
	case Keyless, SingleKey:
		return passthrough(multi), nil
	case FixedMultiKey:
		return Decomposition{}, fmt.Errorf("%w '%s'", domain.ErrUnsupportedCommand, attr.Name)
	}

	first := attr.FirstKey
	step := attr.Step

	if len(multi) <= first+1 {
		return passthrough(multi), nil
	}

	if len(multi[first:]) <= step {
		return passthrough(multi), nil
	}

	subs := make([][][]byte, 0, (len(multi)-first)/step)

	for i := first; i < len(multi); i += step {
		if len(multi[i:]) < step {
			return Decomposition{}, fmt.Errorf("%w for '%s', invalid sub argument %s",
				domain.ErrMalformedArguments, attr.Name, multi[i])
		}

		sub := make([][]byte, 0, first+step)
		sub = append(sub, multi[:first]...)
		sub = append(sub, multi[i:i+step]...)

		subs = append(subs, sub)
	}

	return Decomposition{SubCommands: subs}, nil
}

func passthrough(multi [][]byte) Decomposition {
	return Decomposition{Passthrough: multi}
}

func formatArgs(argv [][]byte) string {
	parts := make([]string, len(argv))

	for i, arg := range argv {
		parts[i] = string(arg)
	}

	return strings.Join(parts, " ")
}
