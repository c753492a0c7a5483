package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	queryDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/query"
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

type RaiseInput struct {
	ProgramID string
	AskerID   string
	Question  string
}

type AnswerInput struct {
	QueryID    string
	AnswererID string
	Answer     string
}

type QueryDTO struct {
	QueryID    string     `json:"query_id"`
	ProgramID  string     `json:"program_id"`
	AskedBy    string     `json:"asked_by"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer,omitempty"`
	AnsweredBy string     `json:"answered_by,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Raise inserts a pending query and forces the program to `queried`. There is
// deliberately no status guard beyond existence: raising a query re-opens the
// program for discussion from whatever state it was in.
func (u *Usecase) Raise(ctx context.Context, in RaiseInput) (*QueryDTO, error) {
	if in.Question == "" {
		return nil, fmt.Errorf("%w: question is required", programDomain.ErrValidation)
	}
	asker, err := u.lookupActor(ctx, in.AskerID)
	if err != nil {
		return nil, err
	}
	if !u.policy.CanReview(asker) {
		return nil, identityDomain.ErrPermissionDenied
	}

	var (
		dto     *QueryDTO
		ownerID string
		title   string
	)
	err = u.uow.WithinProgramTx(ctx, in.ProgramID, func(r uow.Repos, p *programDomain.Program) error {
		q := &queryDomain.Query{
			QueryID:   id.NewID32(),
			ProgramID: p.ProgramID,
			AskedBy:   asker.UserID,
			Question:  in.Question,
			Status:    queryDomain.StatusPending,
		}
		if err := r.Queries.Create(ctx, q); err != nil {
			return err
		}
		// idempotent re-assertion: two concurrent raises both land on queried
		p.Status = programDomain.StatusQueried
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		ownerID, title = p.OwnerID, p.Title
		dto = toDTO(q)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Send(ctx, notification.To(ownerID,
		"Query raised on your program",
		fmt.Sprintf("%s raised a query on %q: %s", asker.Name, title, in.Question),
		notification.SeverityInfo,
	))
	return dto, nil
}

// Answer records the applicant's answer and forces the program to
// `answered_query`. Re-answering an already-answered query overwrites the
// previous answer and answerer; see DESIGN.md for the rationale.
func (u *Usecase) Answer(ctx context.Context, in AnswerInput) (*QueryDTO, error) {
	if in.Answer == "" {
		return nil, fmt.Errorf("%w: answer is required", programDomain.ErrValidation)
	}
	answerer, err := u.lookupActor(ctx, in.AnswererID)
	if err != nil {
		return nil, err
	}

	var (
		dto     *QueryDTO
		askerID string
		title   string
	)
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		q, err := r.Queries.GetByQueryID(ctx, in.QueryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return queryDomain.ErrNotFound
			}
			return err
		}
		p, err := r.Programs.GetByProgramIDForUpdate(ctx, q.ProgramID)
		if err != nil {
			return err
		}
		if !u.policy.CanEditContent(answerer, p.OwnerID) {
			return identityDomain.ErrPermissionDenied
		}

		now := time.Now().UTC()
		q.Answer = in.Answer
		q.AnsweredBy = answerer.UserID
		q.AnsweredAt = &now
		q.Status = queryDomain.StatusAnswered
		if err := r.Queries.Save(ctx, q); err != nil {
			return err
		}

		p.Status = programDomain.StatusAnsweredQuery
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		askerID, title = q.AskedBy, p.Title
		dto = toDTO(q)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Send(ctx, notification.To(askerID,
		"Query answered",
		fmt.Sprintf("%s answered your query on %q", answerer.Name, title),
		notification.SeverityInfo,
	))
	return dto, nil
}

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

func toDTO(q *queryDomain.Query) *QueryDTO {
	return &QueryDTO{
		QueryID:    q.QueryID,
		ProgramID:  q.ProgramID,
		AskedBy:    q.AskedBy,
		Question:   q.Question,
		Answer:     q.Answer,
		AnsweredBy: q.AnsweredBy,
		AnsweredAt: q.AnsweredAt,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
	}
}
