package mock

import (
	"sync"

	"github.com/fwojciec/pagelink"
)

var _ pagelink.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of pagelink.Notifier that records every
// notification it receives.
type Notifier struct {
	mu            sync.Mutex
	Notifications []pagelink.Notification
}

func (n *Notifier) Notify(notification pagelink.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Notifications = append(n.Notifications, notification)
}

// ByKind returns the recorded notifications of the given kind.
func (n *Notifier) ByKind(kind pagelink.NotificationKind) []pagelink.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []pagelink.Notification
	for _, notification := range n.Notifications {
		if notification.Kind == kind {
			out = append(out, notification)
		}
	}
	return out
}
