package expose

import (
	"strings"

	"github.com/vendorexpose/vendorexpose/internal/failure"
)

// ResolveKey picks the method key from, in order: the explicit argument,
// the persisted marker content, the environment override, and KeyDefault.
// Empty or whitespace-only inputs are skipped.
func ResolveKey(explicit, persisted, env string) string {
	for _, k := range []string{explicit, persisted, env} {
		if k = strings.TrimSpace(k); k != "" {
			return k
		}
	}
	return KeyDefault
}

// ForKey returns the method for key. Unknown keys are a configuration error.
func ForKey(key string) (Method, error) {
	switch key {
	case KeyCopy:
		return NewCopy(), nil
	case KeySymlink:
		return NewSymlink(), nil
	case KeyJunction:
		return NewJunction(), nil
	case KeyNone:
		return NewChained(KeyNone), nil
	case KeyAuto:
		return Auto(), nil
	default:
		return nil, failure.Configf("invalid method %q: expected one of %s", key, strings.Join(Keys(), ", "))
	}
}
