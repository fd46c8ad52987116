package cli

import (
	"github.com/spf13/cobra"

	"github.com/vendorexpose/vendorexpose/internal/plugin"
)

func init() {
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUpdateCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	hookCmd.AddCommand(hookRootCmd)
	rootCmd.AddCommand(hookCmd)
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run package manager lifecycle hooks",
	Long: `Expose or remove folders for a single package as the package manager
installs, updates or removes it. Paths are relative to the project root or
absolute.

Example:
  vendor-expose hook install vendor/acme/widget
  vendor-expose hook uninstall vendor/acme/widget
  vendor-expose hook root`,
}

var hookInstallCmd = &cobra.Command{
	Use:   "install <path>",
	Short: "Expose folders of an installed package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, func(p *plugin.Plugin) (bool, error) {
			return p.InstallPackage(args[0])
		})
	},
}

var hookUpdateCmd = &cobra.Command{
	Use:   "update <path>",
	Short: "Re-expose folders of an updated package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, func(p *plugin.Plugin) (bool, error) {
			return p.InstallPackage(args[0])
		})
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall <path>",
	Short: "Remove exposed folders of a package being removed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, func(p *plugin.Plugin) (bool, error) {
			return p.UninstallPackage(args[0])
		})
	},
}

var hookRootCmd = &cobra.Command{
	Use:   "root",
	Short: "Expose folders of the root project after install or update",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, (*plugin.Plugin).InstallRoot)
	},
}

func runHook(cmd *cobra.Command, fn func(*plugin.Plugin) (bool, error)) error {
	p, err := loadPlugin(cmd)
	if err != nil {
		return err
	}
	_, err = fn(p)
	return err
}
