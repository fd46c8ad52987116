// Package plugin maps package manager lifecycle events and the explicit
// refresh command onto exposure passes. Install and update expose one
// library, uninstall removes its public target, and the root hook and
// Refresh expose every discovered library.
package plugin
