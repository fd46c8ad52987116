// Package failure defines the error taxonomy shared by the exposure engine:
// ConfigError for fatal configuration problems, LinkError for filesystem
// failures that a chained method may retry with another strategy, and
// NotFoundError for missing descriptors or packages that callers usually
// resolve with a default.
package failure
