// Package library models one installable unit, either a vendor package or
// the root project, and computes where its exposed folders land under the
// public webroot.
//
// Target paths follow <base>[/public]/<resources-dir>/<relative path>. When
// the project has no public/ directory, vendor packages drop their leading
// vendor/ segment so older project layouts keep their URLs.
package library
