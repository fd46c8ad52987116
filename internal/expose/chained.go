package expose

import (
	"errors"

	"github.com/vendorexpose/vendorexpose/internal/failure"
)

// Chained tries a list of methods in order until one succeeds.
// Only *failure.LinkError is retried; any other error stops the chain.
type Chained struct {
	name      string
	failovers []Method
}

// NewChained builds a chain reported under name. An empty chain does nothing.
func NewChained(name string, failovers ...Method) *Chained {
	return &Chained{name: name, failovers: failovers}
}

// Name returns the key the chain was built for.
func (c *Chained) Name() string { return c.name }

// Methods returns the inner methods in the order they are tried.
func (c *Chained) Methods() []Method { return c.failovers }

// ExposeDirectory returns nil on the first success, or the last link failure
// when every method failed.
func (c *Chained) ExposeDirectory(source, target string) error {
	var last error
	for _, m := range c.failovers {
		err := m.ExposeDirectory(source, target)
		if err == nil {
			return nil
		}
		var le *failure.LinkError
		if !errors.As(err, &le) {
			return err
		}
		last = err
	}
	return last
}
