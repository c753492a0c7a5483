package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deduction is one finance-authorized deduction against a program's budget.
type Deduction struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	DeductionID string          `gorm:"size:32;uniqueIndex:ux_deductions_deduction_id" json:"deduction_id"`
	ProgramID   string          `gorm:"size:32;index:idx_deductions_program" json:"program_id"`
	DeductedBy  string          `gorm:"size:32" json:"deducted_by"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Reason      string          `gorm:"type:text" json:"reason"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Deduction) TableName() string { return "budget_deductions" }

type TrackingType string

const (
	TrackingIncome    TrackingType = "income"
	TrackingExpense   TrackingType = "expense"
	TrackingDeduction TrackingType = "deduction"
)

// TrackingEntry is the generic financial-transaction record consumed by
// reporting outside this core. Every committed deduction appends exactly one
// entry of type "deduction".
type TrackingEntry struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	ProgramID   string          `gorm:"size:32;index:idx_budget_tracking_program" json:"program_id"`
	Type        TrackingType    `gorm:"type:enum('income','expense','deduction')" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	RecordedBy  string          `gorm:"size:32" json:"recorded_by"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (TrackingEntry) TableName() string { return "budget_tracking" }
