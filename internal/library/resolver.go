package library

import (
	"regexp"

	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/platform"
)

// PublicDir is the webroot directory name under the project root.
const PublicDir = "public"

var vendorPrefix = regexp.MustCompile(`^vendor[/\\]`)

// PublicPathExists reports whether <base>/public is a directory.
func (l *Library) PublicPathExists() bool {
	return platform.IsDir(JoinPaths(l.basePath, PublicDir))
}

// InstalledIntoVendor reports whether the library lives under vendor/.
func (l *Library) InstalledIntoVendor() bool {
	return vendorPrefix.MatchString(l.RelativePath())
}

// ResourcesDir returns the resource directory name, resolving it from the
// project configuration on first use.
func (l *Library) ResourcesDir() (string, error) {
	if l.resourcesDir != "" {
		return l.resourcesDir, nil
	}
	if l.project == nil {
		return "", failure.Configf("could not determine the resources dir for %s: no project configuration", l.path)
	}

	dir, err := ResolveResourcesDir(ResourcesInput{
		Configured:       l.project.ResourcesDir,
		Env:              l.project.EnvResourcesDir,
		FrameworkVersion: l.project.FrameworkVersion,
	})
	if err != nil {
		return "", err
	}
	l.resourcesDir = dir
	return dir, nil
}

// BasePublicPath returns the root all libraries are exposed under:
// <base>/public/<resources-dir> when public/ exists, else <base>/<resources-dir>.
func (l *Library) BasePublicPath() (string, error) {
	dir, err := l.ResourcesDir()
	if err != nil {
		return "", err
	}
	if l.PublicPathExists() {
		return JoinPaths(l.basePath, PublicDir, dir), nil
	}
	return JoinPaths(l.basePath, dir), nil
}

// PublicPath returns the directory this library's folders are exposed in.
// Without a public/ directory the leading vendor/ segment is dropped.
func (l *Library) PublicPath() (string, error) {
	base, err := l.BasePublicPath()
	if err != nil {
		return "", err
	}

	rel := l.RelativePath()
	if !l.PublicPathExists() && l.InstalledIntoVendor() {
		rel = rel[len(VendorDir)+1:]
	}
	return JoinPaths(base, rel), nil
}

// RequiresExpose reports whether the library declares folders and is either
// under vendor/ or in a project with a public/ directory.
func (l *Library) RequiresExpose() (bool, error) {
	folders, err := l.ExposedFolders()
	if err != nil {
		return false, err
	}
	if len(folders) == 0 {
		return false, nil
	}
	return l.PublicPathExists() || l.InstalledIntoVendor(), nil
}
