package commands

import (
	"github.com/spf13/cobra"

	"github.com/showhide/showhide-cli/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <page>",
	Short: "Open a page in the interactive terminal UI",
	Long: `Open a page file in the terminal. Collapsible regions start hidden;
move between their buttons with tab and toggle with enter or space.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return tui.Run(cfg, args[0])
	},
}
