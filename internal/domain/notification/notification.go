package notification

import (
	"context"
	"log"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Notification is addressed to one user, or to all administrators when
// Recipient is nil.
type Notification struct {
	Recipient *string
	Title     string
	Message   string
	Severity  Severity
}

func To(userID, title, message string, severity Severity) Notification {
	return Notification{Recipient: &userID, Title: title, Message: message, Severity: severity}
}

func ToAdmins(title, message string, severity Severity) Notification {
	return Notification{Title: title, Message: message, Severity: severity}
}

type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// Notifier fans notifications out after the owning transaction has committed.
// Dispatch is best-effort: failures are logged and never surfaced to the
// caller, so a broken dispatcher cannot fail or mask a workflow operation.
type Notifier struct{ d Dispatcher }

func NewNotifier(d Dispatcher) *Notifier { return &Notifier{d: d} }

func (n *Notifier) Send(ctx context.Context, events ...Notification) {
	if n == nil || n.d == nil {
		return
	}
	for _, ev := range events {
		if err := n.d.Dispatch(ctx, ev); err != nil {
			log.Printf("notification dispatch failed (%q): %v", ev.Title, err)
		}
	}
}
