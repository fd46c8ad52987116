//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths of an isolated project.
type testEnv struct {
	ProjectDir string // project root holding composer.json and vendor/
	PublicDir  string // <project>/public, created only when requested
}

// setupTestEnv creates an isolated project directory and clears the SS_
// environment overrides so only files in the project drive behaviour.
func setupTestEnv(t *testing.T, withPublic bool) *testEnv {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolving temp dir: %v", err)
	}
	env := &testEnv{ProjectDir: dir}

	t.Setenv("SS_VENDOR_METHOD", "")
	t.Setenv("SS_RESOURCES_DIR", "")

	if withPublic {
		env.PublicDir = filepath.Join(dir, "public")
		if err := os.MkdirAll(env.PublicDir, 0755); err != nil {
			t.Fatalf("creating public/: %v", err)
		}
	}
	return env
}

// setupVendor installs a synthetic set of vendor packages: two modules that
// expose folders, one that exposes nothing and one directory that is not a
// module at all.
func setupVendor(t *testing.T, projectDir string) {
	t.Helper()

	writeModule(t, projectDir, "silverstripe/admin", `{
  "name": "silverstripe/admin",
  "type": "silverstripe-vendormodule",
  "extra": {"expose": ["client/dist", "thirdparty"]}
}`)
	writeFile(t, filepath.Join(projectDir, "vendor/silverstripe/admin/client/dist/js/bundle.js"), "console.log('admin');\n")
	writeFile(t, filepath.Join(projectDir, "vendor/silverstripe/admin/thirdparty/jquery/jquery.js"), "/* jquery */\n")

	writeModule(t, projectDir, "silverstripe/asset-admin", `{
  "name": "silverstripe/asset-admin",
  "extra": {"expose": ["client/dist"]}
}`)
	writeFile(t, filepath.Join(projectDir, "vendor/silverstripe/asset-admin/client/dist/styles/bundle.css"), "body{}\n")

	writeModule(t, projectDir, "silverstripe/config", `{"name": "silverstripe/config"}`)

	writeFile(t, filepath.Join(projectDir, "vendor/psr/log/composer.json"), `{"name": "psr/log", "extra": {"expose": ["src"]}}`)
}

// writeModule writes composer.json and _config/ for vendor/<name>.
func writeModule(t *testing.T, projectDir, name, descriptor string) {
	t.Helper()
	dir := filepath.Join(projectDir, "vendor", filepath.FromSlash(name))
	writeFile(t, filepath.Join(dir, "composer.json"), descriptor)
	if err := os.MkdirAll(filepath.Join(dir, "_config"), 0755); err != nil {
		t.Fatalf("creating _config for %s: %v", name, err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
