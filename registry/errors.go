package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry-level failures (not per-field diagnostics —
// those go through package diag).
var (
	ErrUnknownType       = errors.New("registry: unknown type")
	ErrAlreadyRegistered = errors.New("registry: type already registered")
)

func typeMismatch(typeName string, v any) error {
	return fmt.Errorf("registry: descriptor %q bound to wrong native type (got %T)", typeName, v)
}
