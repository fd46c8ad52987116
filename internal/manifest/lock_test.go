package manifest

import (
	"testing"

	"github.com/vendorexpose/vendorexpose/internal/failure"
)

const sampleLock = `{
  "packages": [
    {"name": "silverstripe/framework", "version": "dev-master"},
    {"name": "acme/widget", "version": "1.2.3"}
  ],
  "packages-dev": [
    {"name": "phpunit/phpunit", "version": "9.6.0"}
  ],
  "aliases": [
    {"package": "silverstripe/framework", "version": "dev-master", "alias": "4.4.x-dev", "alias_normalized": "4.4.9999999.9999999-dev"}
  ]
}`

func TestReadLock(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, LockFile, sampleLock)

	lock, err := ReadLock(dir)
	if err != nil {
		t.Fatalf("ReadLock: %v", err)
	}

	tests := []struct {
		pkg  string
		want string
	}{
		{"silverstripe/framework", "4.4.9999999.9999999-dev"},
		{"acme/widget", "1.2.3"},
		{"phpunit/phpunit", "9.6.0"},
	}
	for _, tt := range tests {
		got, err := lock.PackageVersion(tt.pkg)
		if err != nil {
			t.Errorf("PackageVersion(%s): %v", tt.pkg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PackageVersion(%s) = %q, want %q", tt.pkg, got, tt.want)
		}
	}

	if _, err := lock.PackageVersion("missing/pkg"); !failure.IsNotFound(err) {
		t.Errorf("missing package err = %v, want NotFoundError", err)
	}
}

func TestPackageVersionFallsBackToAlias(t *testing.T) {
	lock := &Lock{
		Packages: []LockedPackage{{Name: "silverstripe/framework", Version: "dev-main"}},
		Aliases:  []LockAlias{{Package: "silverstripe/framework", Version: "dev-main", Alias: "5.0.x-dev"}},
	}
	got, err := lock.PackageVersion("silverstripe/framework")
	if err != nil {
		t.Fatal(err)
	}
	if got != "5.0.x-dev" {
		t.Errorf("PackageVersion = %q, want alias", got)
	}
}

func TestReadLockMissing(t *testing.T) {
	if _, err := ReadLock(t.TempDir()); !failure.IsNotFound(err) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		version string
		want    bool
		wantErr bool
	}{
		{"4.4.0", true, false},
		{"4.3.9", false, false},
		{"4.10.0", true, false},
		{"v4.4.1", true, false},
		{"4.4.x-dev", true, false},
		{"4.4.9999999.9999999-dev", true, false},
		{"4.3.x-dev", false, false},
		{"5", true, false},
		{"dev-master", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := AtLeast(tt.version, "4.4.0")
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.version)
				}
				return
			}
			if err != nil {
				t.Fatalf("AtLeast(%q): %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("AtLeast(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
