package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/showhide/showhide-cli/internal/config"
	"github.com/showhide/showhide-cli/internal/errors"
	"github.com/showhide/showhide-cli/pkg/version"
)

var (
	cfg     *config.Config
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "showhide",
	Short: "showhide - collapsible content pages in your terminal",
	Long: `showhide renders structured page files in the terminal, wrapping
regions marked collapsible behind generated Show/Hide buttons.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			// Don't fail if config doesn't exist yet
			cfg = &config.Config{}
		}

		if debug {
			cfg.Debug = true
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorMsg := errors.FormatUserError(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMsg)

		if errors.IsPageError(err) {
			fmt.Fprintf(os.Stderr, "\nHint: Check the page path and its YAML structure\n")
		} else if errors.IsTargetMissing(err) {
			fmt.Fprintf(os.Stderr, "\nHint: Raise max_attempts or declare the region in the page file\n")
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/showhide/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetBuildInfo())
	},
}
