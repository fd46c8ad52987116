package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vendorexpose/vendorexpose/internal/branding"
	"github.com/vendorexpose/vendorexpose/internal/config"
	"github.com/vendorexpose/vendorexpose/internal/expose"
	"github.com/vendorexpose/vendorexpose/internal/failure"
	"github.com/vendorexpose/vendorexpose/internal/plugin"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectDir string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", "", "Project root (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [method]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` refreshes all exposed module, theme and project folders.

Every library that lists folders under extra.expose in its composer.json is
exposed into the public resources directory. The method defaults to the last
used one, then ` + branding.EnvVar(config.MethodKey) + `, then "` + expose.KeyDefault + `".
Options: ` + strings.Join(expose.Keys(), ", "),
	Args:          cobra.MaximumNArgs(1),
	ValidArgs:     expose.Keys(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var method string
		if len(args) == 1 {
			method = args[0]
		}

		p, err := loadPlugin(cmd)
		if err != nil {
			return err
		}

		res, err := p.Refresh(method)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if res.Libraries == 0 {
			fmt.Fprintln(out, "No modules to expose")
			return nil
		}
		if res.Updated {
			fmt.Fprintln(out, "All modules updated!")
		}
		return nil
	},
}

// newLogger builds the stderr progress logger.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadPlugin reads the project configuration for --project or the
// working directory.
func loadPlugin(cmd *cobra.Command) (*plugin.Plugin, error) {
	dir := projectDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		dir = cwd
	}

	logger := newLogger(cmd.ErrOrStderr())
	p, err := plugin.Load(dir, logger)
	if err != nil {
		return nil, err
	}

	proj := p.Project()
	logger.Debug("Loaded project",
		"path", proj.BasePath,
		"resources-dir", proj.ResourcesDir,
		"env-resources-dir", proj.EnvResourcesDir,
		"env-method", proj.EnvMethod,
		"framework", proj.FrameworkVersion,
	)
	return p, nil
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	projectDir = ""
	verbose = false
	versionShort = false
	versionJSON = false

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return failure.ExitCode(err)
	}
	return failure.ExitSuccess
}
