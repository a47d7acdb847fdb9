package messages

import (
	"github.com/showhide/showhide-cli/internal/page"
)

// PageLoadedMsg carries a freshly parsed page into the model.
type PageLoadedMsg struct {
	Page *page.Page
}

// PageErrorMsg reports a failure to load the page file.
type PageErrorMsg struct {
	Err error
}

// SetupTickMsg is the recurring timed callback for one widget's setup
// polling. Each tick either completes setup or schedules exactly one more.
type SetupTickMsg struct {
	TargetID string
}

// WidgetFailedMsg reports a widget that gave up under a bounded retry policy.
type WidgetFailedMsg struct {
	TargetID string
	Err      error
}
