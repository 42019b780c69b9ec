package attribute

import (
	"fmt"

	"github.com/han-ian/tidis/internal/domain"
)

// CheckSingleKey fails unless argv addresses exactly one key group.
func (registry *Registry) CheckSingleKey(argv [][]byte) error {
	decomposition, err := registry.Split(argv)

	if hasError(err) {
		return err
	}

	if !decomposition.IsPassthrough() {
		return fmt.Errorf("%w: %s", domain.ErrMultipleKeys, formatArgs(argv))
	}

	return nil
}
