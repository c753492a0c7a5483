package program

import (
	"time"

	"github.com/shopspring/decimal"

	deductionDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/deduction"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	queryDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/query"
	remarkDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/remark"
)

type KPIInput struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

type DocumentInput struct {
	Category     string `json:"category"`
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
}

// CreateProgramInput: only OwnerID and LetterReferenceNumber are required at
// creation time; everything else, including documents, may arrive later.
type CreateProgramInput struct {
	OwnerID               string          `json:"owner_id"`
	LetterReferenceNumber string          `json:"letter_reference_number"`
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	Department            string          `json:"department"`
	Recipient             string          `json:"recipient"`
	Budget                string          `json:"budget"` // decimal string, "" = 0
	StartDate             string          `json:"start_date"`
	EndDate               string          `json:"end_date"`
	Objectives            []string        `json:"objectives"`
	KPIs                  []KPIInput      `json:"kpis"`
	Documents             []DocumentInput `json:"documents"`
}

// UpdateFieldsInput is the allow-list for the generic update operation: a nil
// pointer means "leave unchanged". Status is the admin-only escape hatch.
type UpdateFieldsInput struct {
	Title                 *string          `json:"title"`
	Description           *string          `json:"description"`
	Department            *string          `json:"department"`
	Recipient             *string          `json:"recipient"`
	LetterReferenceNumber *string          `json:"letter_reference_number"`
	Budget                *string          `json:"budget"`
	StartDate             *string          `json:"start_date"`
	EndDate               *string          `json:"end_date"`
	Objectives            *[]string        `json:"objectives"`
	KPIs                  *[]KPIInput      `json:"kpis"`
	Documents             *[]DocumentInput `json:"documents"`
	Status                *string          `json:"status"`
}

type ProgramDTO struct {
	ProgramID             string                      `json:"program_id"`
	OwnerID               string                      `json:"owner_id"`
	Title                 string                      `json:"title"`
	Description           string                      `json:"description"`
	Department            string                      `json:"department"`
	Recipient             string                      `json:"recipient"`
	LetterReferenceNumber string                      `json:"letter_reference_number"`
	Budget                decimal.Decimal             `json:"budget"`
	StartDate             *time.Time                  `json:"start_date"`
	EndDate               *time.Time                  `json:"end_date"`
	Objectives            []string                    `json:"objectives"`
	KPIs                  []programDomain.KPI         `json:"kpis"`
	Documents             []programDomain.DocumentRef `json:"documents"`
	Status                string                      `json:"status"`
	SubmittedBy           string                      `json:"submitted_by,omitempty"`
	SubmittedAt           *time.Time                  `json:"submitted_at,omitempty"`
	ApprovedBy            string                      `json:"approved_by,omitempty"`
	ApprovedByName        string                      `json:"approved_by_name,omitempty"`
	ApprovedAt            *time.Time                  `json:"approved_at,omitempty"`
	RejectedBy            string                      `json:"rejected_by,omitempty"`
	RejectedByName        string                      `json:"rejected_by_name,omitempty"`
	RejectedAt            *time.Time                  `json:"rejected_at,omitempty"`
	RejectionReason       string                      `json:"rejection_reason,omitempty"`
	VoucherNumber         string                      `json:"voucher_number,omitempty"`
	EFTNumber             string                      `json:"eft_number,omitempty"`
	AcceptedBy            string                      `json:"accepted_by,omitempty"`
	AcceptedByName        string                      `json:"accepted_by_name,omitempty"`
	AcceptedAt            *time.Time                  `json:"accepted_at,omitempty"`
	BudgetDeducted        decimal.Decimal             `json:"budget_deducted"`
	CreatedAt             time.Time                   `json:"created_at"`

	Queries    []queryDomain.Query         `json:"queries,omitempty"`
	Remarks    []remarkDomain.Remark       `json:"remarks,omitempty"`
	Deductions []deductionDomain.Deduction `json:"deductions,omitempty"`
}

type RemarkDTO struct {
	RemarkID  string    `json:"remark_id"`
	ProgramID string    `json:"program_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(p *programDomain.Program) *ProgramDTO {
	return &ProgramDTO{
		ProgramID:             p.ProgramID,
		OwnerID:               p.OwnerID,
		Title:                 p.Title,
		Description:           p.Description,
		Department:            p.Department,
		Recipient:             p.Recipient,
		LetterReferenceNumber: p.LetterReferenceNumber,
		Budget:                p.Budget,
		StartDate:             p.StartDate,
		EndDate:               p.EndDate,
		Objectives:            p.Objectives,
		KPIs:                  p.KPIs,
		Documents:             p.Documents,
		Status:                string(p.Status),
		SubmittedBy:           p.SubmittedBy,
		SubmittedAt:           p.SubmittedAt,
		ApprovedBy:            p.ApprovedBy,
		ApprovedByName:        p.ApprovedByName,
		ApprovedAt:            p.ApprovedAt,
		RejectedBy:            p.RejectedBy,
		RejectedByName:        p.RejectedByName,
		RejectedAt:            p.RejectedAt,
		RejectionReason:       p.RejectionReason,
		VoucherNumber:         p.VoucherNumber,
		EFTNumber:             p.EFTNumber,
		AcceptedBy:            p.AcceptedBy,
		AcceptedByName:        p.AcceptedByName,
		AcceptedAt:            p.AcceptedAt,
		BudgetDeducted:        p.BudgetDeducted,
		CreatedAt:             p.CreatedAt,
	}
}
