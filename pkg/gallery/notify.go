package gallery

// NotificationKind tells the UI how to style a notification
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a transient message for the user
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}

// Notifier receives notifications. Display and expiry are up to the implementation.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to Notifier
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}
