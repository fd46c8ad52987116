//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// JunctionSupported reports whether directory junctions can be created here.
func JunctionSupported() bool { return true }

// Junction creates a directory junction at link pointing to source.
// Junctions need absolute targets and no special privileges.
func Junction(source, link string) error {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", source, err)
	}
	absLink, err := filepath.Abs(link)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", link, err)
	}

	cmd := exec.Command("cmd", "/c", "mklink", "/J", absLink, absSource)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mklink /J %s %s: %w (%s)", absLink, absSource, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// IsJunction reports whether path is a directory junction (mount point reparse tag).
func IsJunction(path string) bool {
	name, err := windows.UTF16PtrFromString(filepath.Clean(path))
	if err != nil {
		return false
	}

	attrs, err := windows.GetFileAttributes(name)
	if err != nil {
		return false
	}
	if attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT == 0 || attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0 {
		return false
	}

	var data windows.Win32finddata
	h, err := windows.FindFirstFile(name, &data)
	if err != nil {
		return false
	}
	_ = windows.FindClose(h)

	return data.Reserved0 == windows.IO_REPARSE_TAG_MOUNT_POINT
}
