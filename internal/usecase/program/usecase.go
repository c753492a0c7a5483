package program

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	remarkDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/remark"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/uow"
	"github.com/MinThiha23/exco-budget-management-system-sub000/pkg/id"
)

type Usecase struct {
	repo     programDomain.Repository
	uow      uow.UnitOfWork
	ids      identityDomain.Service
	policy   identityDomain.Policy
	notifier *notification.Notifier
}

func NewUsecase(repo programDomain.Repository, tx uow.UnitOfWork, ids identityDomain.Service, policy identityDomain.Policy, notifier *notification.Notifier) *Usecase {
	return &Usecase{repo: repo, uow: tx, ids: ids, policy: policy, notifier: notifier}
}

func (u *Usecase) Create(ctx context.Context, in CreateProgramInput) (*ProgramDTO, error) {
	if in.LetterReferenceNumber == "" {
		return nil, fmt.Errorf("%w: letter_reference_number is required", programDomain.ErrValidation)
	}
	owner, err := u.ids.Lookup(ctx, in.OwnerID)
	if err != nil {
		if errors.Is(err, identityDomain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown owner", programDomain.ErrValidation)
		}
		return nil, err
	}

	budget, err := parseAmount(in.Budget, false)
	if err != nil {
		return nil, fmt.Errorf("%w: budget must be a non-negative decimal", programDomain.ErrValidation)
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", programDomain.ErrValidation)
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", programDomain.ErrValidation)
	}

	p := &programDomain.Program{
		ProgramID:             id.NewID32(),
		OwnerID:               owner.UserID,
		Title:                 in.Title,
		Description:           in.Description,
		Department:            in.Department,
		Recipient:             in.Recipient,
		LetterReferenceNumber: in.LetterReferenceNumber,
		Budget:                budget,
		StartDate:             start,
		EndDate:               end,
		Objectives:            programDomain.StringList(in.Objectives),
		KPIs:                  toKPIs(in.KPIs),
		Documents:             toDocumentRefs(in.Documents),
		Status:                programDomain.StatusDraft,
		BudgetDeducted:        decimal.Zero,
	}
	if p.Objectives == nil {
		p.Objectives = programDomain.StringList{}
	}

	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Submit(ctx context.Context, programID, actorID string) (*ProgramDTO, error) {
	actor, err := u.lookupActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var dto *ProgramDTO
	err = u.uow.WithinProgramTx(ctx, programID, func(r uow.Repos, p *programDomain.Program) error {
		// submit is strictly for the owner; even admins go through
		// the generic update path instead
		if actor.UserID != p.OwnerID {
			return identityDomain.ErrPermissionDenied
		}
		if p.Status != programDomain.StatusDraft {
			return programDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		p.Status = programDomain.StatusSubmitted
		p.SubmittedBy = actor.UserID
		p.SubmittedAt = &now
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Send(ctx, notification.ToAdmins(
		"Program submitted",
		fmt.Sprintf("%s submitted program %q for review", actor.Name, dto.Title),
		notification.SeverityInfo,
	))
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, programID string) (*ProgramDTO, error) {
	var dto *ProgramDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Programs.GetByProgramID(ctx, programID)
		if err != nil {
			return err
		}
		dto = toDTO(p)
		if dto.Queries, err = r.Queries.ListByProgramID(ctx, programID); err != nil {
			return err
		}
		if dto.Remarks, err = r.Remarks.ListByProgramID(ctx, programID); err != nil {
			return err
		}
		if dto.Deductions, err = r.Deductions.ListByProgramID(ctx, programID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]ProgramDTO, error) {
	ps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ps), nil
}

func (u *Usecase) ListByOwner(ctx context.Context, ownerID string) ([]ProgramDTO, error) {
	ps, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(ps), nil
}

// ListReviewable returns the finance work queue: submitted programs and those
// in a query/answer cycle, oldest submission first.
func (u *Usecase) ListReviewable(ctx context.Context) ([]ProgramDTO, error) {
	ps, err := u.repo.ListByStatuses(ctx, []programDomain.Status{
		programDomain.StatusSubmitted,
		programDomain.StatusQueried,
		programDomain.StatusAnsweredQuery,
	})
	if err != nil {
		return nil, err
	}
	return toDTOs(ps), nil
}

// UpdateFields applies the allow-listed field updates. Content fields require
// owner or admin; the status field requires admin and is validated against
// the known states. Nothing is applied on any failure.
func (u *Usecase) UpdateFields(ctx context.Context, programID, actorID string, in UpdateFieldsInput) (*ProgramDTO, error) {
	actor, err := u.lookupActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var dto *ProgramDTO
	err = u.uow.WithinProgramTx(ctx, programID, func(r uow.Repos, p *programDomain.Program) error {
		if !u.policy.CanEditContent(actor, p.OwnerID) {
			return identityDomain.ErrPermissionDenied
		}
		if in.Status != nil && !u.policy.CanSetStatus(actor) {
			return identityDomain.ErrPermissionDenied
		}
		if err := applyFields(p, in); err != nil {
			return err
		}
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// UpdateStatus is the admin-only direct status overwrite. All other mutating
// paths encode their own transition; this one exists for administrative
// correction only.
func (u *Usecase) UpdateStatus(ctx context.Context, programID, actorID, status string) (*ProgramDTO, error) {
	return u.UpdateFields(ctx, programID, actorID, UpdateFieldsInput{Status: &status})
}

func (u *Usecase) Delete(ctx context.Context, programID, actorID string) error {
	actor, err := u.lookupActor(ctx, actorID)
	if err != nil {
		return err
	}
	p, err := u.repo.GetByProgramID(ctx, programID)
	if err != nil {
		return mapNotFound(err)
	}
	if !u.policy.CanEditContent(actor, p.OwnerID) {
		return identityDomain.ErrPermissionDenied
	}
	if err := u.repo.Delete(ctx, p, actor.UserID); err != nil {
		return err
	}

	u.notifier.Send(ctx, notification.ToAdmins(
		"Program deleted",
		fmt.Sprintf("%s deleted program %q (%s)", actor.Name, p.Title, p.LetterReferenceNumber),
		notification.SeverityWarning,
	))
	return nil
}

func (u *Usecase) AddRemark(ctx context.Context, programID, actorID, text string) (*RemarkDTO, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: remark text is required", programDomain.ErrValidation)
	}
	actor, err := u.lookupActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if _, err := u.repo.GetByProgramID(ctx, programID); err != nil {
		return nil, mapNotFound(err)
	}

	var m *remarkDomain.Remark
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m = &remarkDomain.Remark{
			RemarkID:  id.NewID32(),
			ProgramID: programID,
			AuthorID:  actor.UserID,
			Text:      text,
		}
		return r.Remarks.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return &RemarkDTO{
		RemarkID:  m.RemarkID,
		ProgramID: m.ProgramID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}, nil
}

// ---- helpers ----

func (u *Usecase) lookupActor(ctx context.Context, actorID string) (*identityDomain.User, error) {
	actor, err := u.ids.Lookup(ctx, actorID)
	if err != nil {
		if errors.Is(err, identityDomain.ErrNotFound) {
			return nil, identityDomain.ErrPermissionDenied
		}
		return nil, err
	}
	return actor, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return programDomain.ErrNotFound
	}
	return err
}

func applyFields(p *programDomain.Program, in UpdateFieldsInput) error {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Department != nil {
		p.Department = *in.Department
	}
	if in.Recipient != nil {
		p.Recipient = *in.Recipient
	}
	if in.LetterReferenceNumber != nil {
		if *in.LetterReferenceNumber == "" {
			return fmt.Errorf("%w: letter_reference_number cannot be emptied", programDomain.ErrValidation)
		}
		p.LetterReferenceNumber = *in.LetterReferenceNumber
	}
	if in.Budget != nil {
		b, err := parseAmount(*in.Budget, false)
		if err != nil {
			return fmt.Errorf("%w: budget must be a non-negative decimal", programDomain.ErrValidation)
		}
		p.Budget = b
	}
	if in.StartDate != nil {
		d, err := parseDate(*in.StartDate)
		if err != nil {
			return fmt.Errorf("%w: start_date must be YYYY-MM-DD", programDomain.ErrValidation)
		}
		p.StartDate = d
	}
	if in.EndDate != nil {
		d, err := parseDate(*in.EndDate)
		if err != nil {
			return fmt.Errorf("%w: end_date must be YYYY-MM-DD", programDomain.ErrValidation)
		}
		p.EndDate = d
	}
	if in.Objectives != nil {
		p.Objectives = programDomain.StringList(*in.Objectives)
	}
	if in.KPIs != nil {
		p.KPIs = toKPIs(*in.KPIs)
	}
	if in.Documents != nil {
		p.Documents = toDocumentRefs(*in.Documents)
	}
	if in.Status != nil {
		s := programDomain.Status(*in.Status)
		if !s.Valid() {
			return fmt.Errorf("%w: unknown status %q", programDomain.ErrValidation, *in.Status)
		}
		p.Status = s
	}
	return nil
}

// parseAmount parses a decimal string; "" yields zero. strict requires a
// strictly positive amount.
func parseAmount(s string, strict bool) (decimal.Decimal, error) {
	if s == "" {
		if strict {
			return decimal.Zero, errors.New("amount is required")
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if strict && d.Sign() <= 0 {
		return decimal.Zero, errors.New("amount must be positive")
	}
	if !strict && d.Sign() < 0 {
		return decimal.Zero, errors.New("amount must not be negative")
	}
	return d, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

func toKPIs(in []KPIInput) programDomain.KPIList {
	out := make(programDomain.KPIList, 0, len(in))
	for _, k := range in {
		out = append(out, programDomain.KPI{Name: k.Name, Target: k.Target})
	}
	return out
}

func toDocumentRefs(in []DocumentInput) programDomain.DocumentList {
	out := make(programDomain.DocumentList, 0, len(in))
	for _, d := range in {
		out = append(out, programDomain.DocumentRef{
			Category:     d.Category,
			OriginalName: d.OriginalName,
			StoredName:   d.StoredName,
		})
	}
	return out
}

func toDTOs(ps []programDomain.Program) []ProgramDTO {
	out := make([]ProgramDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toDTO(&ps[i]))
	}
	return out
}
