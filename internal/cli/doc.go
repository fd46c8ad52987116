// Package cli defines the Cobra command tree for the vendor-expose CLI. The
// root command refreshes every exposed folder; hook subcommands map package
// manager lifecycle events onto single-library passes. Commands delegate to
// the plugin package and only handle flags, output and exit codes.
package cli
