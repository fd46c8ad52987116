package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// CreateRelativeSymlink creates a directory link at link pointing to source.
// On Unix the link target is stored relative to the link's parent so the
// tree keeps working when the project root moves.
// On Windows, where symlinks need developer mode, it creates a junction.
func CreateRelativeSymlink(source, link string) error {
	if runtime.GOOS == "windows" {
		return Junction(source, link)
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", source, err)
	}
	absLink, err := filepath.Abs(link)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", link, err)
	}

	rel, err := filepath.Rel(filepath.Dir(absLink), absSource)
	if err != nil {
		return fmt.Errorf("computing relative path from %s to %s: %w", absLink, absSource, err)
	}
	return os.Symlink(rel, absLink)
}

// IsSymlink reports whether path itself is a symbolic link.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// IsSymlinkedDir reports whether path is a symbolic link that resolves to a directory.
func IsSymlinkedDir(path string) bool {
	if !IsSymlink(path) {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsLink reports whether path is a symlink or a junction.
func IsLink(path string) bool {
	return IsSymlink(path) || IsJunction(path)
}
