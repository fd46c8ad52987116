package task

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vendorexpose/vendorexpose/internal/expose"
	"github.com/vendorexpose/vendorexpose/internal/library"
	"github.com/vendorexpose/vendorexpose/internal/platform"
)

// MethodFile is the marker inside the resource root holding the last method key.
const MethodFile = ".method"

const templatesDir = "templates"

//go:embed all:templates
var templates embed.FS

// bundled is the templates directory as the root of its own file system.
var bundled = mustSub(templates, templatesDir)

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("task: embedded %s: %v", dir, err))
	}
	return sub
}

// Task exposes libraries into one resource root.
type Task struct {
	resourcesPath string
	envMethod     string
	logger        *log.Logger
	templates     fs.FS
}

// Option configures a Task.
type Option func(*Task)

// WithLogger sets the logger progress is reported on.
func WithLogger(l *log.Logger) Option {
	return func(t *Task) { t.logger = l }
}

// WithEnvMethod sets the SS_VENDOR_METHOD value consulted when neither an
// explicit key nor a marker file selects the method.
func WithEnvMethod(key string) Option {
	return func(t *Task) { t.envMethod = key }
}

// WithTemplates replaces the bundled protective files seeded into the
// resource root. Files are read from the root of fsys.
func WithTemplates(fsys fs.FS) Option {
	return func(t *Task) { t.templates = fsys }
}

// New returns a task for the absolute resource root resourcesPath,
// e.g. /var/www/public/_resources.
func New(resourcesPath string, opts ...Option) *Task {
	t := &Task{
		resourcesPath: resourcesPath,
		logger:        log.New(io.Discard),
		templates:     bundled,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ResourcesPath returns the resource root.
func (t *Task) ResourcesPath() string { return t.resourcesPath }

// MethodFilePath returns the path of the .method marker.
func (t *Task) MethodFilePath() string {
	return library.JoinPaths(t.resourcesPath, MethodFile)
}

// Process exposes libs with the method named by methodKey, or with the
// persisted, environment or default method when methodKey is empty.
// It reports whether any exposure work was done: false for an empty
// library list or the "none" method.
func (t *Task) Process(libs []*library.Library, methodKey string) (bool, error) {
	if len(libs) == 0 {
		return false, nil
	}

	if err := t.setupResources(); err != nil {
		return false, err
	}

	key := expose.ResolveKey(methodKey, t.persistedKey(), t.envMethod)
	method, err := expose.ForKey(key)
	if err != nil {
		return false, err
	}
	if key == expose.KeyNone {
		t.logger.Info("Expose method is none, skipping", "resources", t.resourcesPath)
		return false, nil
	}

	for _, lib := range libs {
		required, err := lib.RequiresExpose()
		if err != nil {
			return false, err
		}
		if !required {
			continue
		}

		folders, err := lib.ExposedFolders()
		if err != nil {
			return false, err
		}
		t.logger.Info("Exposing web directories", "module", lib.Name(), "method", key)
		for _, folder := range folders {
			t.logger.Info("  - " + folder)
		}

		if err := lib.ExposePaths(method); err != nil {
			return false, err
		}
	}

	if err := t.saveMethodKey(key); err != nil {
		return false, err
	}
	return true, nil
}

// setupResources creates the resource root and seeds any missing template
// files. Existing files are never overwritten.
func (t *Task) setupResources() error {
	if err := platform.EnsureDir(t.resourcesPath); err != nil {
		return err
	}

	entries, err := fs.ReadDir(t.templates, ".")
	if err != nil {
		return fmt.Errorf("reading bundled resources: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		target := filepath.Join(t.resourcesPath, name)
		if platform.Exists(target) {
			continue
		}

		data, err := fs.ReadFile(t.templates, path.Clean(name))
		if err != nil {
			return fmt.Errorf("reading bundled %s: %w", name, err)
		}
		t.logger.Info("Writing " + name + " to resources folder")
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
	}
	return nil
}

// persistedKey returns the trimmed marker content, or "" when the marker
// is absent or unreadable.
func (t *Task) persistedKey() string {
	data, err := os.ReadFile(t.MethodFilePath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (t *Task) saveMethodKey(key string) error {
	if err := os.WriteFile(t.MethodFilePath(), []byte(key), 0644); err != nil {
		return fmt.Errorf("saving expose method: %w", err)
	}
	return nil
}
