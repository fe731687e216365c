package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/pagelink"
)

// Ensure writerNotifier implements pagelink.Notifier.
var _ pagelink.Notifier = (*writerNotifier)(nil)

// writerNotifier renders notifications as terminal lines: success to stdout,
// everything else to stderr.
type writerNotifier struct {
	stdout io.Writer
	stderr io.Writer
}

func (n *writerNotifier) Notify(notification pagelink.Notification) {
	switch notification.Kind {
	case pagelink.NotifySuccess:
		fmt.Fprintln(n.stdout, notification.Message)
	case pagelink.NotifyError:
		fmt.Fprintf(n.stderr, "error: %s\n", notification.Message)
	case pagelink.NotifyWarning:
		fmt.Fprintf(n.stderr, "warning: %s\n", notification.Message)
	case pagelink.NotifyDebug:
		fmt.Fprintf(n.stderr, "debug: %s\n", notification.Message)
	}
}
