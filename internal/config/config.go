package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vendorexpose/vendorexpose/internal/branding"
	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/manifest"
)

const (
	// ReferencePackage is the framework whose locked version picks the
	// default resource directory name.
	ReferencePackage = "silverstripe/framework"

	// MethodKey is the environment suffix that overrides the expose method.
	MethodKey = "vendor_method"

	// ResourcesDirKey is the environment and .env suffix naming the resource directory.
	ResourcesDirKey = "resources_dir"

	dotEnvFile = ".env"
)

// Project holds every configuration input the exposure engine reads for one
// project. Load fills it once; resolution functions consume the fields.
type Project struct {
	// BasePath is the absolute project root.
	BasePath string

	// ResourcesDir is extra.resources-dir from the root composer.json.
	ResourcesDir string

	// EnvResourcesDir is SS_RESOURCES_DIR from the process environment,
	// falling back to the project .env file.
	EnvResourcesDir string

	// EnvMethod is SS_VENDOR_METHOD from the process environment.
	EnvMethod string

	// FrameworkVersion is the locked ReferencePackage version, empty when
	// there is no lock file or the package is not locked.
	FrameworkVersion string
}

// Load reads project configuration from basePath: the root composer.json via
// Viper (with SS_ prefixed environment overrides), the .env file via
// godotenv, and composer.lock for the reference framework version.
func Load(basePath string) (*Project, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolving project path %s: %w", basePath, err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(abs, manifest.DescriptorFile))
	v.SetConfigType("json")
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, &failure.ConfigError{Msg: "reading project descriptor", Err: err}
	}

	p := &Project{
		BasePath:     abs,
		ResourcesDir: strings.TrimSpace(v.GetString("extra.resources-dir")),
		EnvMethod:    strings.TrimSpace(v.GetString(MethodKey)),
	}

	p.EnvResourcesDir = strings.TrimSpace(v.GetString(ResourcesDirKey))
	if p.EnvResourcesDir == "" {
		dotEnv, err := readDotEnv(abs)
		if err != nil {
			return nil, err
		}
		p.EnvResourcesDir = strings.TrimSpace(dotEnv[branding.EnvVar(ResourcesDirKey)])
	}

	version, err := frameworkVersion(abs)
	if err != nil {
		return nil, err
	}
	p.FrameworkVersion = version

	return p, nil
}

// readDotEnv parses <basePath>/.env. A missing or unreadable file yields no values.
func readDotEnv(basePath string) (map[string]string, error) {
	path := filepath.Join(basePath, dotEnvFile)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, nil
		}
		return nil, &failure.ConfigError{Msg: "parsing " + path, Err: err}
	}
	return values, nil
}

// frameworkVersion looks up ReferencePackage in composer.lock.
// An absent lock file or package is not an error.
func frameworkVersion(basePath string) (string, error) {
	lock, err := manifest.ReadLock(basePath)
	if failure.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	version, err := lock.PackageVersion(ReferencePackage)
	if failure.IsNotFound(err) {
		return "", nil
	}
	return version, err
}

func isNotExist(err error) bool {
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}
