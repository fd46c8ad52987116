package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vendorexpose/vendorexpose/internal/failure"
)

func writeJSON(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadDescriptor(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, DescriptorFile, `{
  "name": "acme/widget",
  "type": "silverstripe-vendormodule",
  "extra": {"expose": ["client/dist", "images"], "resources-dir": "_static"}
}`)

	d, err := ReadDescriptor(dir)
	if err != nil {
		t.Fatalf("ReadDescriptor: %v", err)
	}
	if d.Name != "acme/widget" {
		t.Errorf("Name = %q", d.Name)
	}
	if d.PackageType() != "silverstripe-vendormodule" {
		t.Errorf("PackageType = %q", d.PackageType())
	}
	if d.Path() != filepath.Join(dir, DescriptorFile) {
		t.Errorf("Path = %q", d.Path())
	}

	extra, err := d.Extra()
	if err != nil {
		t.Fatalf("Extra: %v", err)
	}
	if want := []string{"client/dist", "images"}; !reflect.DeepEqual(extra.Expose, want) {
		t.Errorf("Expose = %v, want %v", extra.Expose, want)
	}
	if extra.ResourcesDir != "_static" {
		t.Errorf("ResourcesDir = %q", extra.ResourcesDir)
	}
}

func TestReadDescriptorMissing(t *testing.T) {
	_, err := ReadDescriptor(t.TempDir())
	if !failure.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestReadDescriptorMalformed(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, DescriptorFile, `{"name": `)
	_, err := ReadDescriptor(dir)
	if !failure.IsConfig(err) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
}

func TestDescriptorDefaults(t *testing.T) {
	for _, body := range []string{`{}`, `{"extra": null}`, `{"extra": []}`} {
		d, err := ParseDescriptor([]byte(body), "composer.json")
		if err != nil {
			t.Fatalf("ParseDescriptor(%s): %v", body, err)
		}
		if d.PackageType() != DefaultType {
			t.Errorf("PackageType = %q, want %q", d.PackageType(), DefaultType)
		}
		extra, err := d.Extra()
		if err != nil {
			t.Fatalf("Extra(%s): %v", body, err)
		}
		if len(extra.Expose) != 0 {
			t.Errorf("Expose = %v, want empty", extra.Expose)
		}
	}
}

func TestDescriptorExtraRejectedBySchema(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"dotted folder", `{"extra": {"expose": ["../secrets"]}}`},
		{"absolute folder", `{"extra": {"expose": ["/etc"]}}`},
		{"backslash folder", `{"extra": {"expose": ["\\windows"]}}`},
		{"non-string folder", `{"extra": {"expose": [42]}}`},
		{"expose not a list", `{"extra": {"expose": "client"}}`},
		{"bad resources dir", `{"extra": {"resources-dir": "a/b"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDescriptor([]byte(tt.body), "composer.json")
			if err != nil {
				t.Fatalf("ParseDescriptor: %v", err)
			}
			if _, err := d.Extra(); !failure.IsConfig(err) {
				t.Errorf("Extra err = %v, want ConfigError", err)
			}
		})
	}
}

func TestValidateExtraReportsIssuePath(t *testing.T) {
	result, err := ValidateExtra([]byte(`{"expose": ["client", ".env"]}`))
	if err != nil {
		t.Fatalf("ValidateExtra: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/expose/1" && issue.Keyword == "pattern" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a pattern issue at /expose/1, got %+v", result.Issues)
	}
}

func TestValidateExtraMalformedJSON(t *testing.T) {
	if _, err := ValidateExtra([]byte(`{`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
