//go:build !windows

package platform

import "errors"

// ErrJunctionUnsupported is returned when junctions are requested outside Windows.
var ErrJunctionUnsupported = errors.New("directory junctions are unsupported on this platform")

// JunctionSupported reports whether directory junctions can be created here.
func JunctionSupported() bool { return false }

// Junction always fails outside Windows.
func Junction(source, link string) error {
	return ErrJunctionUnsupported
}

// IsJunction is always false outside Windows.
func IsJunction(path string) bool { return false }
