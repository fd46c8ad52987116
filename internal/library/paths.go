package library

import (
	"os"
	"path/filepath"
	"strings"
)

// VendorDir is the directory packages are installed into.
const VendorDir = "vendor"

var separators = strings.NewReplacer("/", string(os.PathSeparator), "\\", string(os.PathSeparator))

// JoinPaths joins parts with the host separator. Mixed separators inside a
// part are normalized, empty parts are dropped, and the result never has a
// doubled or trailing separator.
func JoinPaths(parts ...string) string {
	norm := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		norm = append(norm, separators.Replace(p))
	}
	if len(norm) == 0 {
		return ""
	}
	return filepath.Join(norm...)
}

// VendorPath returns the conventional install path <base>/vendor/<vendor>/<name>
// for a package name such as "acme/widget".
func VendorPath(basePath, packageName string) string {
	return JoinPaths(basePath, VendorDir, packageName)
}

// trimSeparators strips leading and trailing / and \ characters.
func trimSeparators(p string) string {
	return strings.Trim(p, "/\\")
}
