package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/uow"
)

// Usecase covers the finance decisions: approve, reject, and the MMK
// acceptance fast path that finalizes an approved program without a second
// finance review round.
type Usecase struct {
	uow      uow.UnitOfWork
	ids      identityDomain.Service
	policy   identityDomain.Policy
	notifier *notification.Notifier
}

func NewUsecase(tx uow.UnitOfWork, ids identityDomain.Service, policy identityDomain.Policy, notifier *notification.Notifier) *Usecase {
	return &Usecase{uow: tx, ids: ids, policy: policy, notifier: notifier}
}

type ApproveInput struct {
	ProgramID     string
	ActorID       string
	VoucherNumber string
	EFTNumber     string
}

type RejectInput struct {
	ProgramID string
	ActorID   string
	Reason    string
}

func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*programDomain.Program, error) {
	if in.VoucherNumber == "" {
		return nil, fmt.Errorf("%w: voucher number is required", programDomain.ErrValidation)
	}
	if in.EFTNumber == "" {
		return nil, fmt.Errorf("%w: EFT number is required", programDomain.ErrValidation)
	}
	actor, err := u.requireReviewer(ctx, in.ActorID)
	if err != nil {
		return nil, err
	}

	var out *programDomain.Program
	err = u.uow.WithinProgramTx(ctx, in.ProgramID, func(r uow.Repos, p *programDomain.Program) error {
		if !p.Status.Reviewable() {
			return programDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		p.Status = programDomain.StatusApproved
		p.ApprovedBy = actor.UserID
		p.ApprovedByName = actor.Name
		p.ApprovedAt = &now
		p.VoucherNumber = in.VoucherNumber
		p.EFTNumber = in.EFTNumber
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Send(ctx, notification.To(out.OwnerID,
		"Program approved",
		fmt.Sprintf("Your program %q was approved (voucher %s, EFT %s)", out.Title, in.VoucherNumber, in.EFTNumber),
		notification.SeveritySuccess,
	))
	return out, nil
}

func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*programDomain.Program, error) {
	if in.Reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", programDomain.ErrValidation)
	}
	actor, err := u.requireReviewer(ctx, in.ActorID)
	if err != nil {
		return nil, err
	}

	var out *programDomain.Program
	err = u.uow.WithinProgramTx(ctx, in.ProgramID, func(r uow.Repos, p *programDomain.Program) error {
		if !p.Status.Reviewable() {
			return programDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		p.Status = programDomain.StatusRejected
		p.RejectedBy = actor.UserID
		p.RejectedByName = actor.Name
		p.RejectedAt = &now
		p.RejectionReason = in.Reason
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Send(ctx, notification.To(out.OwnerID,
		"Program rejected",
		fmt.Sprintf("Your program %q was rejected: %s", out.Title, in.Reason),
		notification.SeverityWarning,
	))
	return out, nil
}

// AcceptDocument moves an approved program onto the MMK fast path, skipping
// further finance review. Only `approved` programs qualify.
func (u *Usecase) AcceptDocument(ctx context.Context, programID, actorID string) (*programDomain.Program, error) {
	actor, err := u.requireReviewer(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var out *programDomain.Program
	err = u.uow.WithinProgramTx(ctx, programID, func(r uow.Repos, p *programDomain.Program) error {
		if p.Status != programDomain.StatusApproved {
			return programDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		p.Status = programDomain.StatusMMKAccepted
		p.AcceptedBy = actor.UserID
		p.AcceptedByName = actor.Name
		p.AcceptedAt = &now
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Send(ctx, notification.To(out.OwnerID,
		"Program document accepted",
		fmt.Sprintf("Your program %q passed MMK acceptance", out.Title),
		notification.SeveritySuccess,
	))
	return out, nil
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

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return programDomain.ErrNotFound
	}
	return err
}
