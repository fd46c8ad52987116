package expose

import (
	"path/filepath"

	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/platform"
)

// Symlink exposes a directory through a relative symbolic link
// (a junction on Windows).
type Symlink struct{}

// NewSymlink returns the symlink method.
func NewSymlink() *Symlink { return &Symlink{} }

// Name returns "symlink".
func (s *Symlink) Name() string { return KeySymlink }

// ExposeDirectory removes target, ensures its parent exists and links it to source.
func (s *Symlink) ExposeDirectory(source, target string) error {
	return link(KeySymlink, source, target, platform.CreateRelativeSymlink)
}

// link runs the shared remove, mkdir-parent, create sequence for link based methods.
func link(op, source, target string, create func(source, target string) error) error {
	if err := checkOverlap(op, source, target); err != nil {
		return err
	}
	if err := platform.RemoveDir(target); err != nil {
		return failure.Link(op, source, target, err)
	}
	if err := platform.EnsureDir(filepath.Dir(target)); err != nil {
		return failure.Link(op, source, target, err)
	}
	if err := create(source, target); err != nil {
		return failure.Link(op, source, target, err)
	}
	return nil
}
