// Package platform provides the cross-platform filesystem primitives used to
// expose directories: relative symlinks, Windows directory junctions,
// link-aware removal and recursive copies. On Windows, symlink requests are
// served by junctions because junctions do not need developer mode.
package platform
