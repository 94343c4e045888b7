package conversation

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd"))
	urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")).Bold(true)
)

// PrintFunc prints one formatted line.
// Matches the signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// CLINotifier writes operator notices to the terminal.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLINotifier creates a terminal notifier.
// If printFn is nil, lines go to stdout.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc) *CLINotifier {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &CLINotifier{log: log, printFn: printFn}
}

// Notify prints a normal notice.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s", noticeStyle.Render(message))
	return nil
}

// NotifyUrgent prints a failure notice.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Warn("notify-urgent: %s", message)
	n.printFn("%s", urgentStyle.Render(message))
	return nil
}
