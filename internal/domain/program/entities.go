package program

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("program not found")
	ErrInvalidTransition = errors.New("invalid program state transition")
	// ErrValidation is wrapped with field context by the operations, e.g.
	// fmt.Errorf("%w: voucher number is required", ErrValidation).
	ErrValidation = errors.New("validation failed")
)

type Status string

const (
	StatusDraft          Status = "draft"
	StatusSubmitted      Status = "submitted"
	StatusQueried        Status = "queried"
	StatusAnsweredQuery  Status = "answered_query"
	StatusApproved       Status = "approved"
	StatusRejected       Status = "rejected"
	StatusMMKAccepted    Status = "mmk_accepted"
	StatusBudgetDeducted Status = "budget_deducted"
)

// Valid reports whether s is one of the eight known workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusQueried, StatusAnsweredQuery,
		StatusApproved, StatusRejected, StatusMMKAccepted, StatusBudgetDeducted:
		return true
	}
	return false
}

// Reviewable reports whether a finance officer still has the program on their
// desk: submitted, or in a query/answer cycle. Approve and reject only run on
// reviewable programs; drafts and decided programs both refuse.
func (s Status) Reviewable() bool {
	switch s {
	case StatusSubmitted, StatusQueried, StatusAnsweredQuery:
		return true
	}
	return false
}

type Program struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	ProgramID string `gorm:"size:32;uniqueIndex:ux_programs_program_id_active" json:"program_id"`
	OwnerID   string `gorm:"size:32;index:idx_programs_owner_active" json:"owner_id"`

	Title                 string          `gorm:"size:255" json:"title"`
	Description           string          `gorm:"type:text" json:"description"`
	Department            string          `gorm:"size:128" json:"department"`
	Recipient             string          `gorm:"size:255" json:"recipient"`
	LetterReferenceNumber string          `gorm:"size:64;not null" json:"letter_reference_number"`
	Budget                decimal.Decimal `gorm:"type:decimal(18,2)" json:"budget"`
	StartDate             *time.Time      `gorm:"type:date" json:"start_date"`
	EndDate               *time.Time      `gorm:"type:date" json:"end_date"`

	Objectives StringList   `gorm:"type:text" json:"objectives"`
	KPIs       KPIList      `gorm:"type:text;column:kpis" json:"kpis"`
	Documents  DocumentList `gorm:"type:text" json:"documents"`

	Status          Status     `gorm:"type:enum('draft','submitted','queried','answered_query','approved','rejected','mmk_accepted','budget_deducted');default:'draft'" json:"status"`
	SubmittedBy     string     `gorm:"size:32" json:"submitted_by"`
	SubmittedAt     *time.Time `json:"submitted_at"`
	ApprovedBy      string     `gorm:"size:32" json:"approved_by"`
	ApprovedByName  string     `gorm:"size:255" json:"approved_by_name"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectedBy      string     `gorm:"size:32" json:"rejected_by"`
	RejectedByName  string     `gorm:"size:255" json:"rejected_by_name"`
	RejectedAt      *time.Time `json:"rejected_at"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`
	VoucherNumber   string     `gorm:"size:64" json:"voucher_number"`
	EFTNumber       string     `gorm:"size:64;column:eft_number" json:"eft_number"`
	AcceptedBy      string     `gorm:"size:32" json:"accepted_by"`
	AcceptedByName  string     `gorm:"size:255" json:"accepted_by_name"`
	AcceptedAt      *time.Time `json:"accepted_at"`

	BudgetDeducted decimal.Decimal `gorm:"type:decimal(18,2)" json:"budget_deducted"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Program) TableName() string { return "programs" }
