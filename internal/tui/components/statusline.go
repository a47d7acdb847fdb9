package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusLine represents a universal status line component
type StatusLine struct {
	width               int
	leftContent         string
	rightContent        string
	style               lipgloss.Style
	tempMessage         string
	tempMessageTime     time.Time
	tempMessageDuration time.Duration
	isPolling           bool
	pollingSpinner      spinner.Model
}

// NewStatusLine creates a new status line component
func NewStatusLine() *StatusLine {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	return &StatusLine{
		style: lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		pollingSpinner: s,
	}
}

// SetWidth sets the width of the status line
func (s *StatusLine) SetWidth(width int) *StatusLine {
	s.width = width
	return s
}

// SetLeft sets the left content of the status line
func (s *StatusLine) SetLeft(content string) *StatusLine {
	s.leftContent = content
	return s
}

// SetRight sets the right content of the status line
func (s *StatusLine) SetRight(content string) *StatusLine {
	s.rightContent = content
	return s
}

// SetPolling marks whether any widget is still waiting for its target
func (s *StatusLine) SetPolling(polling bool) *StatusLine {
	s.isPolling = polling
	return s
}

// UpdateSpinnerWithTick advances the polling spinner animation
func (s *StatusLine) UpdateSpinnerWithTick(msg spinner.TickMsg) (*StatusLine, tea.Cmd) {
	var cmd tea.Cmd
	if s.isPolling {
		s.pollingSpinner, cmd = s.pollingSpinner.Update(msg)
	}
	return s, cmd
}

// SpinnerTick returns the command that starts the spinner animation
func (s *StatusLine) SpinnerTick() tea.Cmd {
	return s.pollingSpinner.Tick
}

// SetTemporaryMessage shows a message for the given duration
func (s *StatusLine) SetTemporaryMessage(msg string, duration time.Duration) *StatusLine {
	s.tempMessage = msg
	s.tempMessageTime = time.Now()
	s.tempMessageDuration = duration
	return s
}

// View renders the status line
func (s *StatusLine) View() string {
	left := s.leftContent
	if s.tempMessage != "" && time.Since(s.tempMessageTime) < s.tempMessageDuration {
		left = s.tempMessage
	}

	right := s.rightContent
	if s.isPolling {
		right = s.pollingSpinner.View() + " " + right
	}

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return s.style.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}
