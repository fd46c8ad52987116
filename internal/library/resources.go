package library

import (
	"regexp"

	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/manifest"
)

const (
	// DefaultResourcesDir is used by frameworks with a configurable resource directory.
	DefaultResourcesDir = "_resources"

	// LegacyResourcesDir is the fixed name used by older frameworks.
	LegacyResourcesDir = "resources"

	// ConfigurableFrameworkVersion is the first reference framework release
	// with a configurable resource directory.
	ConfigurableFrameworkVersion = "4.4.0"
)

var resourcesDirPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ResourcesInput lists the sources consulted for the resource directory name.
type ResourcesInput struct {
	// Configured is the explicit per-project value (extra.resources-dir).
	Configured string
	// Env is SS_RESOURCES_DIR from the environment or .env file.
	Env string
	// FrameworkVersion is the locked reference framework version, if any.
	FrameworkVersion string
}

// ResolveResourcesDir picks the resource directory name: the configured
// value, then the environment value, then a default chosen by the framework
// version, then LegacyResourcesDir. Custom values that are not
// [A-Za-z0-9_-]+ are a configuration error.
func ResolveResourcesDir(in ResourcesInput) (string, error) {
	if in.Configured != "" {
		if err := ValidateResourcesDir(in.Configured); err != nil {
			return "", err
		}
		return in.Configured, nil
	}

	if in.Env != "" {
		if err := ValidateResourcesDir(in.Env); err != nil {
			return "", err
		}
		return in.Env, nil
	}

	if in.FrameworkVersion != "" {
		modern, err := manifest.AtLeast(in.FrameworkVersion, ConfigurableFrameworkVersion)
		if err == nil {
			if modern {
				return DefaultResourcesDir, nil
			}
			return LegacyResourcesDir, nil
		}
	}

	return LegacyResourcesDir, nil
}

// ValidateResourcesDir rejects names that are not a single safe path segment.
func ValidateResourcesDir(dir string) error {
	if !resourcesDirPattern.MatchString(dir) {
		return failure.Configf("invalid resources dir %q: must match %s", dir, resourcesDirPattern)
	}
	return nil
}
