package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vendorexpose/vendorexpose/internal/config"
	"github.com/vendorexpose/vendorexpose/internal/expose"
	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/manifest"
)

// Library is one installable unit that may declare folders to expose.
// It is built fresh for every exposure pass.
type Library struct {
	basePath string
	path     string
	name     string

	project      *config.Project
	resourcesDir string

	descriptor *manifest.Descriptor
	descErr    error
	loaded     bool
}

// Option configures a Library.
type Option func(*Library)

// WithName sets the package name instead of reading it from the descriptor.
func WithName(name string) Option {
	return func(l *Library) { l.name = name }
}

// WithProject supplies the project configuration used to resolve the
// resource directory.
func WithProject(p *config.Project) Option {
	return func(l *Library) { l.project = p }
}

// WithResourcesDir fixes the resource directory name, skipping resolution.
func WithResourcesDir(dir string) Option {
	return func(l *Library) { l.resourcesDir = dir }
}

// New builds a library installed at path inside the project at basePath.
// Both paths are made absolute and symlinks are resolved when they exist.
// A path outside basePath is a configuration error.
func New(basePath, path string, opts ...Option) (*Library, error) {
	base, err := canonical(basePath)
	if err != nil {
		return nil, err
	}
	lib, err := canonical(path)
	if err != nil {
		return nil, err
	}

	prefix := base
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	if lib != base && !strings.HasPrefix(lib, prefix) {
		return nil, failure.Configf("library path %s is outside project %s", lib, base)
	}

	l := &Library{basePath: base, path: lib}
	for _, opt := range opts {
		opt(l)
	}
	if l.resourcesDir != "" {
		if err := ValidateResourcesDir(l.resourcesDir); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// canonical returns the absolute, symlink-resolved form of p.
func canonical(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// BasePath returns the project root with no trailing separator.
func (l *Library) BasePath() string { return l.basePath }

// Path returns the library install path.
func (l *Library) Path() string { return l.path }

// RelativePath returns Path relative to BasePath, e.g. vendor/acme/widget.
// It is empty for the root project.
func (l *Library) RelativePath() string {
	return trimSeparators(strings.TrimPrefix(l.path, l.basePath))
}

// Descriptor returns the library's composer.json, read once.
func (l *Library) Descriptor() (*manifest.Descriptor, error) {
	if !l.loaded {
		l.descriptor, l.descErr = manifest.ReadDescriptor(l.path)
		l.loaded = true
	}
	return l.descriptor, l.descErr
}

// Name returns the package name, read from the descriptor when not given.
// Libraries without a named descriptor fall back to their directory name.
func (l *Library) Name() string {
	if l.name != "" {
		return l.name
	}
	if d, err := l.Descriptor(); err == nil && d.Name != "" {
		l.name = d.Name
		return l.name
	}
	return filepath.Base(l.path)
}

// Type returns the descriptor type, defaulting to "module".
func (l *Library) Type() string {
	if d, err := l.Descriptor(); err == nil {
		return d.PackageType()
	}
	return manifest.DefaultType
}

// ExposedFolders returns the validated extra.expose list in declared order.
// A library without a descriptor exposes nothing.
func (l *Library) ExposedFolders() ([]string, error) {
	d, err := l.Descriptor()
	if failure.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	extra, err := d.Extra()
	if err != nil {
		return nil, err
	}

	folders := make([]string, 0, len(extra.Expose))
	for _, folder := range extra.Expose {
		if err := ValidateFolder(folder); err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, nil
}

// ValidateFolder rejects folder names that could leave the library or expose
// dotfiles: any name containing "." or starting with a separator.
func ValidateFolder(folder string) error {
	if strings.Contains(folder, ".") || strings.HasPrefix(folder, "/") || strings.HasPrefix(folder, "\\") {
		return failure.Configf("invalid module folder %q", folder)
	}
	return nil
}

// ExposePaths exposes every folder of the library with m, in declared
// order. Folders inside another listed folder are skipped since they are
// already exposed through it. It does nothing when the library does not
// require exposure.
func (l *Library) ExposePaths(m expose.Method) error {
	required, err := l.RequiresExpose()
	if err != nil || !required {
		return err
	}

	folders, err := l.ExposedFolders()
	if err != nil {
		return err
	}
	target, err := l.PublicPath()
	if err != nil {
		return err
	}

	for _, folder := range topLevelFolders(folders) {
		src := JoinPaths(l.path, folder)
		dst := JoinPaths(target, folder)
		if err := m.ExposeDirectory(src, dst); err != nil {
			return fmt.Errorf("exposing %s for %s: %w", folder, l.Name(), err)
		}
	}
	return nil
}

// topLevelFolders drops duplicates and folders nested under another entry,
// keeping declared order.
func topLevelFolders(folders []string) []string {
	norm := make([]string, len(folders))
	for i, f := range folders {
		norm[i] = filepath.ToSlash(filepath.Clean(JoinPaths(f)))
	}

	var out []string
	for i, f := range norm {
		covered := false
		for j, other := range norm {
			if i == j {
				continue
			}
			switch {
			case other == f:
				covered = j < i
			case other == ".", strings.HasPrefix(f, other+"/"):
				covered = true
			}
			if covered {
				break
			}
		}
		if !covered {
			out = append(out, folders[i])
		}
	}
	return out
}
