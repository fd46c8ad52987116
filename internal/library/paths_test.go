package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJoinPaths(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"/var/www", "public", "_resources"}, sep + filepath.Join("var", "www", "public", "_resources")},
		{[]string{"/var/www/", "/public/"}, sep + filepath.Join("var", "www", "public")},
		{[]string{`/var\www`, `vendor\acme/widget`}, sep + filepath.Join("var", "www", "vendor", "acme", "widget")},
		{[]string{"/var/www", "", "client"}, sep + filepath.Join("var", "www", "client")},
		{[]string{"a//b", "c/"}, filepath.Join("a", "b", "c")},
		{nil, ""},
		{[]string{"", ""}, ""},
	}

	for _, tt := range tests {
		got := JoinPaths(tt.parts...)
		if got != tt.want {
			t.Errorf("JoinPaths(%q) = %q, want %q", tt.parts, got, tt.want)
		}
		if len(got) > 1 && strings.HasSuffix(got, sep) {
			t.Errorf("JoinPaths(%q) has trailing separator", tt.parts)
		}
		if strings.Contains(got, sep+sep) {
			t.Errorf("JoinPaths(%q) has doubled separator", tt.parts)
		}
	}
}

func TestVendorPath(t *testing.T) {
	got := VendorPath("/var/www", "acme/widget")
	want := string(os.PathSeparator) + filepath.Join("var", "www", "vendor", "acme", "widget")
	if got != want {
		t.Errorf("VendorPath = %q, want %q", got, want)
	}
}
