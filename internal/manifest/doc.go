// Package manifest reads the package-manager files the exposure engine
// consumes: a library's composer.json descriptor (name, type and the extra
// block with expose and resources-dir) and the project's composer.lock, which
// is only used to look up the locked version of one reference package.
// The extra block is validated against an embedded JSON schema.
package manifest
