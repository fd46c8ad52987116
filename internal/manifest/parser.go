package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vendorexpose/vendorexpose/internal/failure"
)

// ReadDescriptor reads composer.json from the library directory dir.
// A missing file is a *failure.NotFoundError; malformed JSON is a
// *failure.ConfigError.
func ReadDescriptor(dir string) (*Descriptor, error) {
	path := filepath.Join(dir, DescriptorFile)
	data, err := readFile(path, "descriptor")
	if err != nil {
		return nil, err
	}
	return ParseDescriptor(data, path)
}

// ParseDescriptor decodes descriptor bytes. path is only used in messages.
func ParseDescriptor(data []byte, path string) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &failure.ConfigError{Msg: "parsing descriptor " + path, Err: err}
	}
	d.path = path
	return &d, nil
}

// Path returns the file the descriptor was read from.
func (d *Descriptor) Path() string { return d.path }

// PackageType returns the descriptor type, or DefaultType when unset.
func (d *Descriptor) PackageType() string {
	if d.Type == "" {
		return DefaultType
	}
	return d.Type
}

// Extra validates the raw extra block against the schema and decodes it.
// A descriptor without extra, or with an empty JSON array as written by
// some PHP encoders, yields an empty Extra.
func (d *Descriptor) Extra() (*Extra, error) {
	raw := strings.TrimSpace(string(d.RawExtra))
	if raw == "" || raw == "null" || raw == "[]" {
		return &Extra{}, nil
	}

	result, err := ValidateExtra(d.RawExtra)
	if err != nil {
		return nil, &failure.ConfigError{Msg: "validating extra block in " + d.path, Err: err}
	}
	if !result.Valid {
		return nil, failure.Configf("invalid extra block in %s: %s", d.path, result)
	}

	var extra Extra
	if err := json.Unmarshal(d.RawExtra, &extra); err != nil {
		return nil, &failure.ConfigError{Msg: "decoding extra block in " + d.path, Err: err}
	}
	return &extra, nil
}

// ReadLock reads composer.lock from the project directory.
func ReadLock(projectDir string) (*Lock, error) {
	path := filepath.Join(projectDir, LockFile)
	data, err := readFile(path, "lock file")
	if err != nil {
		return nil, err
	}

	var lock Lock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, &failure.ConfigError{Msg: "parsing lock file " + path, Err: err}
	}
	return &lock, nil
}

// readFile reads path, mapping a missing file to *failure.NotFoundError.
func readFile(path, what string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &failure.NotFoundError{What: what, Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
