package notifymock

import (
	"context"
	"sync"

	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
)

// Dispatcher records every dispatched notification; Err, when set, is
// returned from each Dispatch call (the notifier must swallow it).
type Dispatcher struct {
	mu   sync.Mutex
	Err  error
	sent []notification.Notification
}

func (m *Dispatcher) Dispatch(ctx context.Context, n notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	return m.Err
}

func (m *Dispatcher) Sent() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notification.Notification, len(m.sent))
	copy(out, m.sent)
	return out
}
