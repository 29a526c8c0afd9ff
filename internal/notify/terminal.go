package notify

import (
	"context"
	"fmt"
	"io"
	"os"
)

// TerminalNotifier writes messages to a terminal instead of delivering
// them remotely. It backs the check command's dry-run mode.
type TerminalNotifier struct {
	w io.Writer
}

// NewTerminalNotifier creates a terminal notifier writing to w, or to
// stdout when w is nil.
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalNotifier{w: w}
}

// Send prints the message followed by a newline.
func (t *TerminalNotifier) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(t.w, text)
	return err
}

// NoOpNotifier discards every message. It stands in when delivery is
// intentionally disabled.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// Send does nothing.
func (n *NoOpNotifier) Send(ctx context.Context, text string) error {
	return nil
}
