package plugin

import (
	"fmt"
	"path/filepath"

	"github.com/vendorexpose/vendorexpose/internal/library"
	"github.com/vendorexpose/vendorexpose/internal/manifest"
	"github.com/vendorexpose/vendorexpose/internal/platform"
)

const themesDir = "themes"

// ModulePaths lists every directory under basePath that may hold a module
// or theme, in this order: the project root, vendor/*/* modules, and when
// public/ exists the root-level modules and themes/*.
func ModulePaths(basePath string) ([]string, error) {
	paths := []string{basePath}
	seen := map[string]bool{basePath: true}
	add := func(dirs []string, filter func(string) bool) {
		for _, dir := range dirs {
			if seen[dir] || !platform.IsDir(dir) {
				continue
			}
			if filter != nil && !filter(dir) {
				continue
			}
			seen[dir] = true
			paths = append(paths, dir)
		}
	}

	vendor, err := glob(basePath, library.VendorDir, "*", "*")
	if err != nil {
		return nil, err
	}
	add(vendor, isModule)

	if !platform.IsDir(library.JoinPaths(basePath, library.PublicDir)) {
		return paths, nil
	}

	root, err := glob(basePath, "*")
	if err != nil {
		return nil, err
	}
	add(root, isModule)

	themes, err := glob(basePath, themesDir, "*")
	if err != nil {
		return nil, err
	}
	add(themes, nil)

	return paths, nil
}

func glob(parts ...string) ([]string, error) {
	pattern := library.JoinPaths(parts...)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", pattern, err)
	}
	return matches, nil
}

// isModule reports whether dir carries a _config directory or _config.php.
func isModule(dir string) bool {
	return platform.Exists(filepath.Join(dir, "_config")) ||
		platform.Exists(filepath.Join(dir, "_config.php"))
}

// Libraries returns every discovered library that has a descriptor and
// requires exposure, in ModulePaths order.
func (p *Plugin) Libraries() ([]*library.Library, error) {
	paths, err := ModulePaths(p.project.BasePath)
	if err != nil {
		return nil, err
	}

	var libs []*library.Library
	for _, path := range paths {
		if !platform.Exists(filepath.Join(path, manifest.DescriptorFile)) {
			continue
		}
		lib, err := p.library(path)
		if err != nil {
			return nil, err
		}
		required, err := lib.RequiresExpose()
		if err != nil {
			return nil, err
		}
		if !required {
			continue
		}
		libs = append(libs, lib)
	}
	return libs, nil
}
