package attribute

import (
	"fmt"
	"sort"
	"strings"

	"github.com/han-ian/tidis/internal/domain"
)

// Registry is immutable once NewRegistry returns, lookups need no locking.
type Registry struct {
	commands map[string]CommandAttribute
	shapes   map[string]Shape
	rewrites map[string][]byte
	names    []string
}

func NewRegistry(attrs []CommandAttribute, rewrites map[string]string) (*Registry, error) {
	registry := &Registry{
		commands: make(map[string]CommandAttribute, len(attrs)),
		shapes:   make(map[string]Shape, len(attrs)),
		rewrites: make(map[string][]byte, len(rewrites)),
		names:    make([]string, 0, len(attrs)),
	}

	for _, attr := range attrs {
		err := registry.register(attr)

		if hasError(err) {
			return nil, err
		}
	}

	for from, to := range rewrites {
		err := registry.registerRewrite(from, to)

		if hasError(err) {
			return nil, err
		}
	}

	sort.Strings(registry.names)

	return registry, nil
}

func (registry *Registry) register(attr CommandAttribute) error {
	attr.Name = normalizeName(attr.Name)

	if isEmptyName(attr.Name) {
		return fmt.Errorf("%w: empty command name", domain.ErrUnsupportedShape)
	}

	if _, exists := registry.commands[attr.Name]; exists {
		return fmt.Errorf("%w: duplicated command %s", domain.ErrUnsupportedShape, attr.Name)
	}

	shape := attr.Shape()

	if shape == Invalid {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedShape, attr)
	}

	registry.commands[attr.Name] = attr
	registry.shapes[attr.Name] = shape
	registry.names = append(registry.names, attr.Name)

	return nil
}

func (registry *Registry) registerRewrite(from, to string) error {
	from = normalizeName(from)
	to = normalizeName(to)

	if _, exists := registry.commands[from]; !exists {
		return fmt.Errorf("%w: rewrite source %s is not registered", domain.ErrUnsupportedShape, from)
	}

	target, exists := registry.commands[to]

	if !exists {
		return fmt.Errorf("%w: rewrite target %s is not registered", domain.ErrUnsupportedShape, to)
	}

	if registry.shapes[target.Name] != SingleKey {
		return fmt.Errorf("%w: rewrite target %s must be single-key", domain.ErrUnsupportedShape, to)
	}

	registry.rewrites[from] = []byte(to)

	return nil
}

func (registry *Registry) Lookup(name string) (CommandAttribute, bool) {
	attr, exists := registry.commands[normalizeName(name)]
	return attr, exists
}

func (registry *Registry) RewriteTarget(name string) ([]byte, bool) {
	target, exists := registry.rewrites[normalizeName(name)]

	if !exists {
		return nil, false
	}

	return append([]byte(nil), target...), true
}

func (registry *Registry) Names() []string {
	return append([]string(nil), registry.names...)
}

func (registry *Registry) Len() int {
	return len(registry.names)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isEmptyName(name string) bool {
	return len(name) == 0
}

func hasError(err error) bool {
	return err != nil
}
