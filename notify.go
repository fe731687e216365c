package pagelink

// NotificationKind classifies a notification.
type NotificationKind string

// Notification kinds. Exactly one terminal Success or Error notification is
// emitted per activation; Debug notifications may be emitted at any point
// during extraction and must not affect control flow.
const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyWarning NotificationKind = "warning"
	NotifyDebug   NotificationKind = "debug"
)

// Notification is a user-visible message about an activation.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier consumes notifications. Implementations render them however the
// host environment allows (terminal lines, desktop toasts).
type Notifier interface {
	Notify(n Notification)
}
