package query

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("query not found")

type Status string

const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
)

// Query is a finance-raised question against a program. Raising one forces
// the program to `queried`; answering it forces `answered_query`.
type Query struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	QueryID string `gorm:"size:32;uniqueIndex:ux_queries_query_id" json:"query_id"`
	// Public program identifier, not the numeric PK.
	ProgramID string `gorm:"size:32;index:idx_queries_program" json:"program_id"`

	AskedBy  string `gorm:"size:32" json:"asked_by"`
	Question string `gorm:"type:text" json:"question"`

	Answer     string     `gorm:"type:text" json:"answer"`
	AnsweredBy string     `gorm:"size:32" json:"answered_by"`
	AnsweredAt *time.Time `json:"answered_at"`

	Status Status `gorm:"type:enum('pending','answered');default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Query) TableName() string { return "program_queries" }
