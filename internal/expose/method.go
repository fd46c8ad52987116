package expose

import "runtime"

// Method keys accepted on the command line, in SS_VENDOR_METHOD and in the
// .method marker file.
const (
	KeyCopy     = "copy"
	KeySymlink  = "symlink"
	KeyJunction = "junction"
	KeyAuto     = "auto"
	KeyNone     = "none"

	// KeyDefault is used when nothing else selects a method.
	KeyDefault = KeyAuto
)

// Method materializes the directory source at target.
// Errors that a fallback may retry are *failure.LinkError.
type Method interface {
	Name() string
	ExposeDirectory(source, target string) error
}

// Keys returns every accepted method key.
func Keys() []string {
	return []string{KeyAuto, KeySymlink, KeyCopy, KeyJunction, KeyNone}
}

// Auto returns the platform default failover chain: junction then copy on
// Windows, symlink then copy elsewhere.
func Auto() *Chained {
	if runtime.GOOS == "windows" {
		return NewChained(KeyAuto, NewJunction(), NewCopy())
	}
	return NewChained(KeyAuto, NewSymlink(), NewCopy())
}
