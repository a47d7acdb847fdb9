package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/showhide/showhide-cli/internal/config"
	"github.com/showhide/showhide-cli/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage showhide configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show configuration values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Printf("poll_interval: %s\n", cfg.PollInterval)
			fmt.Printf("max_attempts: %d\n", cfg.MaxAttempts)
			fmt.Printf("theme: %s\n", cfg.Theme)
			fmt.Printf("debug: %t\n", cfg.Debug)
			return nil
		}

		switch args[0] {
		case "poll_interval":
			fmt.Println(cfg.PollInterval)
		case "max_attempts":
			fmt.Println(cfg.MaxAttempts)
		case "theme":
			fmt.Println(cfg.Theme)
		case "debug":
			fmt.Println(cfg.Debug)
		default:
			return &errors.ValidationError{Field: args[0], Message: "unknown config key"}
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "poll_interval":
			d, err := time.ParseDuration(value)
			if err != nil || d <= 0 {
				return &errors.ValidationError{Field: key, Message: "must be a positive duration (e.g. 500ms)"}
			}
			cfg.PollInterval = d
		case "max_attempts":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return &errors.ValidationError{Field: key, Message: "must be a non-negative integer (0 = unlimited)"}
			}
			cfg.MaxAttempts = n
		case "theme":
			cfg.Theme = value
		case "debug":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return &errors.ValidationError{Field: key, Message: "must be true or false"}
			}
			cfg.Debug = b
		default:
			return &errors.ValidationError{Field: key, Message: "unknown config key"}
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
