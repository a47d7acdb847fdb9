package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/showhide/showhide-cli/internal/cache"
	"github.com/showhide/showhide-cli/internal/showhide"
	"github.com/showhide/showhide-cli/internal/tui/components"
)

var renderExpand bool

var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Render a page once to stdout",
	Long: `Render a page without the interactive UI. By default collapsible
regions appear in their initial hidden state; --expand toggles every
widget open first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		pages := cache.NewPageCache()
		defer pages.Stop()

		p, err := pages.Load(args[0])
		if err != nil {
			return err
		}

		policy := showhide.Policy{
			Interval:    cfg.PollInterval,
			MaxAttempts: cfg.MaxAttempts,
		}
		widgets := make([]*showhide.Widget, 0, len(p.Targets))
		for _, targetID := range p.Targets {
			w := showhide.New(p.Doc, targetID, policy)
			w.Initialize()
			widgets = append(widgets, w)
		}
		p.Doc.FinishLoad()

		for _, w := range widgets {
			if _, err := w.AttemptSetup(); err != nil {
				return err
			}
			if renderExpand {
				w.Toggle()
			}
		}

		renderer := components.NewPageRenderer().SetTheme(cfg.Theme)
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			renderer.SetWidth(width)
		}

		if p.Doc.Title != "" {
			fmt.Println(p.Doc.Title)
			fmt.Println()
		}
		fmt.Println(renderer.Render(p.Doc))
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderExpand, "expand", false, "toggle all collapsible regions open")
}
