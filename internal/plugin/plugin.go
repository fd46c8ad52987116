package plugin

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vendorexpose/vendorexpose/internal/config"
	"github.com/vendorexpose/vendorexpose/internal/library"
	"github.com/vendorexpose/vendorexpose/internal/platform"
	"github.com/vendorexpose/vendorexpose/internal/task"
)

// Plugin runs exposure passes for one project.
type Plugin struct {
	project *config.Project
	logger  *log.Logger
}

// New returns a plugin for project. A nil logger discards output.
func New(project *config.Project, logger *log.Logger) *Plugin {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Plugin{project: project, logger: logger}
}

// Load reads the project configuration at basePath and returns its plugin.
func Load(basePath string, logger *log.Logger) (*Plugin, error) {
	project, err := config.Load(basePath)
	if err != nil {
		return nil, err
	}
	return New(project, logger), nil
}

// Project returns the project configuration.
func (p *Plugin) Project() *config.Project { return p.project }

func (p *Plugin) library(path string) (*library.Library, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.project.BasePath, path)
	}
	return library.New(p.project.BasePath, path, library.WithProject(p.project))
}

func (p *Plugin) newTask(resources string) *task.Task {
	return task.New(resources,
		task.WithLogger(p.logger),
		task.WithEnvMethod(p.project.EnvMethod),
	)
}

// InstallPackage exposes the library installed or updated at path. Relative
// paths are taken from the project root. It reports whether anything was
// exposed.
func (p *Plugin) InstallPackage(path string) (bool, error) {
	lib, err := p.library(path)
	if err != nil {
		return false, err
	}
	return p.installLibrary(lib)
}

// InstallRoot exposes the root project's own folders.
func (p *Plugin) InstallRoot() (bool, error) {
	lib, err := p.library(p.project.BasePath)
	if err != nil {
		return false, err
	}
	return p.installLibrary(lib)
}

func (p *Plugin) installLibrary(lib *library.Library) (bool, error) {
	required, err := lib.RequiresExpose()
	if err != nil || !required {
		return false, err
	}
	resources, err := lib.BasePublicPath()
	if err != nil {
		return false, err
	}
	return p.newTask(resources).Process([]*library.Library{lib}, "")
}

// UninstallPackage removes the public target of the library at path, then
// its parent directory when that is left empty. It reports whether anything
// was removed.
func (p *Plugin) UninstallPackage(path string) (bool, error) {
	lib, err := p.library(path)
	if err != nil {
		return false, err
	}
	required, err := lib.RequiresExpose()
	if err != nil || !required {
		return false, err
	}

	target, err := lib.PublicPath()
	if err != nil {
		return false, err
	}
	if !platform.IsDir(target) {
		return false, nil
	}

	p.logger.Info("Removing web directories", "module", lib.Name())
	if err := platform.RemoveDir(target); err != nil {
		return false, fmt.Errorf("removing %s: %w", target, err)
	}

	parent := filepath.Dir(target)
	if empty, err := platform.IsDirEmpty(parent); err == nil && empty {
		if err := platform.RemoveDir(parent); err != nil {
			return true, fmt.Errorf("removing %s: %w", parent, err)
		}
	}
	return true, nil
}

// Result summarises a Refresh pass.
type Result struct {
	// Libraries is the number of libraries that required exposure.
	Libraries int
	// Updated is false when there was nothing to do or the method was none.
	Updated bool
}

// Refresh exposes every discovered library with the method named by
// methodKey, or the persisted or default method when it is empty. The
// resource root is taken from the first library.
func (p *Plugin) Refresh(methodKey string) (Result, error) {
	libs, err := p.Libraries()
	if err != nil {
		return Result{}, err
	}
	if len(libs) == 0 {
		return Result{}, nil
	}

	resources, err := libs[0].BasePublicPath()
	if err != nil {
		return Result{}, err
	}
	updated, err := p.newTask(resources).Process(libs, methodKey)
	if err != nil {
		return Result{}, err
	}
	return Result{Libraries: len(libs), Updated: updated}, nil
}
