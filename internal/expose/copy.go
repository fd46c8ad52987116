package expose

import (
	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/platform"
)

// Copy exposes a directory by copying it.
type Copy struct{}

// NewCopy returns the copy method.
func NewCopy() *Copy { return &Copy{} }

// Name returns "copy".
func (c *Copy) Name() string { return KeyCopy }

// ExposeDirectory replaces target with a fresh copy of source. A previous
// symlink or junction at target is unlinked, not followed. A failed copy
// leaves no partial tree behind.
func (c *Copy) ExposeDirectory(source, target string) error {
	if err := checkOverlap(KeyCopy, source, target); err != nil {
		return err
	}
	if err := platform.RemoveDir(target); err != nil {
		return failure.Link(KeyCopy, source, target, err)
	}

	if err := platform.CopyDir(source, target); err != nil {
		_ = platform.RemoveDir(target)
		return failure.Link(KeyCopy, source, target, err)
	}
	return nil
}
