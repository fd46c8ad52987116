package manifest

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/vendorexpose/vendorexpose/internal/failure"
)

// PackageVersion returns the locked version of name. Branch versions that
// the lock aliases (e.g. "dev-master" as "4.4.x-dev") resolve to the alias.
func (l *Lock) PackageVersion(name string) (string, error) {
	pkg := l.find(name)
	if pkg == nil {
		return "", &failure.NotFoundError{What: "package " + name}
	}

	version := pkg.Version
	for _, alias := range l.Aliases {
		if alias.Package == name && alias.Version == version {
			if alias.AliasNormalized != "" {
				return alias.AliasNormalized, nil
			}
			return alias.Alias, nil
		}
	}
	return version, nil
}

func (l *Lock) find(name string) *LockedPackage {
	for _, set := range [][]LockedPackage{l.Packages, l.PackagesDev} {
		for i := range set {
			if set[i].Name == name {
				return &set[i]
			}
		}
	}
	return nil
}

var numericPrefix = regexp.MustCompile(`^\d+(\.(\d+|x|\*))*`)

// ParseVersion turns a composer version string into a semver version.
// Wildcard segments become 0, stability suffixes are dropped, and only the
// first three segments are kept, so "4.4.x-dev" and
// "4.4.9999999.9999999-dev" both parse.
func ParseVersion(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")

	head := numericPrefix.FindString(v)
	if head == "" {
		return semver.NewVersion(v)
	}

	segments := strings.Split(head, ".")
	if len(segments) > 3 {
		segments = segments[:3]
	}
	for i, s := range segments {
		if s == "x" || s == "*" {
			segments[i] = "0"
		}
	}
	return semver.NewVersion(strings.Join(segments, "."))
}

// AtLeast reports whether version satisfies ">= minimum".
func AtLeast(version, minimum string) (bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return false, err
	}
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
