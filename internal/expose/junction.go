package expose

import (
	"errors"

	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/platform"
)

var (
	errJunctionPlatform = errors.New("cannot create junction on non-windows environment")
	errNotJunction      = errors.New("created link is not a junction")
)

// Junction exposes a directory through a Windows directory junction.
type Junction struct{}

// NewJunction returns the junction method.
func NewJunction() *Junction { return &Junction{} }

// Name returns "junction".
func (j *Junction) Name() string { return KeyJunction }

// ExposeDirectory fails at once off Windows. On Windows it creates the
// junction and then checks that the result really is one.
func (j *Junction) ExposeDirectory(source, target string) error {
	if !platform.JunctionSupported() {
		return failure.Link(KeyJunction, source, target, errJunctionPlatform)
	}

	return link(KeyJunction, source, target, func(source, target string) error {
		if err := platform.Junction(source, target); err != nil {
			return err
		}
		if !platform.IsJunction(target) {
			return errNotJunction
		}
		return nil
	})
}
