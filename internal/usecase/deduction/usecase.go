package deduction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	deductionDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/deduction"
	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/uow"
	"github.com/MinThiha23/exco-budget-management-system-sub000/pkg/id"
)

type Usecase struct {
	uow      uow.UnitOfWork
	ids      identityDomain.Service
	policy   identityDomain.Policy
	notifier *notification.Notifier
}

func NewUsecase(tx uow.UnitOfWork, ids identityDomain.Service, policy identityDomain.Policy, notifier *notification.Notifier) *Usecase {
	return &Usecase{uow: tx, ids: ids, policy: policy, notifier: notifier}
}

type DeductInput struct {
	ProgramID string
	ActorID   string
	Amount    string // decimal string
	Reason    string
}

type DeductionDTO struct {
	DeductionID    string          `json:"deduction_id"`
	ProgramID      string          `json:"program_id"`
	DeductedBy     string          `json:"deducted_by"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason"`
	BudgetDeducted decimal.Decimal `json:"budget_deducted"`
	ProgramStatus  string          `json:"program_status"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Deduct performs the four-part atomic effect: ledger row, cumulative
// counter, program status, budget-tracking entry. All four commit or none do.
func (u *Usecase) Deduct(ctx context.Context, in DeductInput) (*DeductionDTO, error) {
	if in.Amount == "" {
		return nil, fmt.Errorf("%w: amount is required", programDomain.ErrValidation)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a decimal number", programDomain.ErrValidation)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", programDomain.ErrValidation)
	}
	if in.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required", programDomain.ErrValidation)
	}
	actor, err := u.requireReviewer(ctx, in.ActorID)
	if err != nil {
		return nil, err
	}

	var (
		dto     *DeductionDTO
		ownerID string
		title   string
	)
	err = u.uow.WithinProgramTx(ctx, in.ProgramID, func(r uow.Repos, p *programDomain.Program) error {
		d := &deductionDomain.Deduction{
			DeductionID: id.NewID32(),
			ProgramID:   p.ProgramID,
			DeductedBy:  actor.UserID,
			Amount:      amount,
			Reason:      in.Reason,
		}
		if err := r.Deductions.Create(ctx, d); err != nil {
			return err
		}

		p.BudgetDeducted = p.BudgetDeducted.Add(amount)
		p.Status = programDomain.StatusBudgetDeducted
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}

		entry := &deductionDomain.TrackingEntry{
			ProgramID:   p.ProgramID,
			Type:        deductionDomain.TrackingDeduction,
			Amount:      amount,
			Description: in.Reason,
			RecordedBy:  actor.UserID,
		}
		if err := r.Tracking.Create(ctx, entry); err != nil {
			return err
		}

		ownerID, title = p.OwnerID, p.Title
		dto = &DeductionDTO{
			DeductionID:    d.DeductionID,
			ProgramID:      d.ProgramID,
			DeductedBy:     d.DeductedBy,
			Amount:         d.Amount,
			Reason:         d.Reason,
			BudgetDeducted: p.BudgetDeducted,
			ProgramStatus:  string(p.Status),
			CreatedAt:      d.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, programDomain.ErrNotFound
		}
		return nil, err
	}

	u.notifier.Send(ctx, notification.To(ownerID,
		"Budget deducted",
		fmt.Sprintf("%s deducted %s from program %q: %s", actor.Name, amount.StringFixed(2), title, in.Reason),
		notification.SeverityWarning,
	))
	return dto, nil
}

func (u *Usecase) requireReviewer(ctx context.Context, actorID string) (*identityDomain.User, error) {
	actor, err := u.ids.Lookup(ctx, actorID)
	if err != nil {
		if errors.Is(err, identityDomain.ErrNotFound) {
			return nil, identityDomain.ErrPermissionDenied
		}
		return nil, err
	}
	if !u.policy.CanReview(actor) {
		return nil, identityDomain.ErrPermissionDenied
	}
	return actor, nil
}
