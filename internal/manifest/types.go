package manifest

import "encoding/json"

// DescriptorFile is the per-library descriptor file name.
const DescriptorFile = "composer.json"

// LockFile is the project-level locked dependency manifest.
const LockFile = "composer.lock"

// DefaultType is reported when a descriptor has no type field.
const DefaultType = "module"

// Descriptor holds the composer.json fields the exposure engine reads.
// Extra stays raw until Extra is called so a bad expose list does not block
// reading the name or type.
type Descriptor struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	RawExtra json.RawMessage `json:"extra,omitempty"`

	path string
}

// Extra is the typed form of the descriptor's extra block.
type Extra struct {
	Expose       []string `json:"expose,omitempty"`
	ResourcesDir string   `json:"resources-dir,omitempty"`
}

// Lock is the subset of composer.lock needed to find package versions.
type Lock struct {
	Packages    []LockedPackage `json:"packages"`
	PackagesDev []LockedPackage `json:"packages-dev"`
	Aliases     []LockAlias     `json:"aliases"`
}

// LockedPackage is one resolved package entry.
type LockedPackage struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	VersionNormalized string `json:"version_normalized,omitempty"`
}

// LockAlias maps a branch version (e.g. "dev-master") to the version it stands in for.
type LockAlias struct {
	Package         string `json:"package"`
	Version         string `json:"version"`
	Alias           string `json:"alias"`
	AliasNormalized string `json:"alias_normalized,omitempty"`
}
