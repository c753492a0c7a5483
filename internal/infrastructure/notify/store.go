package notify

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
)

// Row is the notification record the dashboard side of the system reads.
// A nil Recipient addresses all administrators.
type Row struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Recipient *string   `gorm:"size:32;index:idx_notifications_recipient" json:"recipient"`
	Title     string    `gorm:"size:255" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Severity  string    `gorm:"size:16" json:"severity"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Row) TableName() string { return "notifications" }

// Store persists notifications for the surrounding system's dashboard.
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

var _ notification.Dispatcher = (*Store)(nil)

func (s *Store) Dispatch(ctx context.Context, n notification.Notification) error {
	row := Row{
		Recipient: n.Recipient,
		Title:     n.Title,
		Message:   n.Message,
		Severity:  string(n.Severity),
	}
	return s.db.WithContext(ctx).Create(&row).Error
}
