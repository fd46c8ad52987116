package expose

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/vendorexpose/vendorexpose/internal/failure"
)

var errOverlap = errors.New("target overlaps source")

// checkOverlap fails when target, with its parent resolved through any
// links, is source, lies inside it or contains it. Removing such a target
// would delete library files.
func checkOverlap(op, source, target string) error {
	src := resolveExisting(source)
	dest := filepath.Join(resolveExisting(filepath.Dir(target)), filepath.Base(target))
	if within(dest, src) || within(src, dest) {
		return failure.Link(op, source, target, errOverlap)
	}
	return nil
}

// resolveExisting makes p absolute and resolves links in its longest
// existing prefix.
func resolveExisting(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	var rest []string
	for {
		if resolved, err := filepath.EvalSymlinks(p); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		parent := filepath.Dir(p)
		if parent == p {
			return filepath.Join(append([]string{p}, rest...)...)
		}
		rest = append([]string{filepath.Base(p)}, rest...)
		p = parent
	}
}

// within reports whether p is root or below it.
func within(p, root string) bool {
	if p == root {
		return true
	}
	if !strings.HasSuffix(root, string(os.PathSeparator)) {
		root += string(os.PathSeparator)
	}
	return strings.HasPrefix(p, root)
}
