package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	documentDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/document"
	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/uow"
)

type Usecase struct {
	docs     documentDomain.Repository
	uow      uow.UnitOfWork
	ids      identityDomain.Service
	notifier *notification.Notifier
}

func NewUsecase(docs documentDomain.Repository, tx uow.UnitOfWork, ids identityDomain.Service, notifier *notification.Notifier) *Usecase {
	return &Usecase{docs: docs, uow: tx, ids: ids, notifier: notifier}
}

type DocumentInput struct {
	Category     string `json:"category"`
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
}

type RecordInput struct {
	ProgramID  string
	UploaderID string
	Documents  []DocumentInput
}

// VersionDTO is a ledger row plus its read-time version number: the 1-based
// position within that category's history. Never persisted.
type VersionDTO struct {
	Category     string    `json:"category"`
	OriginalName string    `json:"original_name"`
	StoredName   string    `json:"stored_name"`
	UploadedBy   string    `json:"uploaded_by"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
}

// Record replaces the program's current document list and appends a history
// row for every stored handle not yet in the ledger. Replaying a handle is a
// no-op, so re-submitting the same upload set is safe.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*programDomain.Program, error) {
	uploader, err := u.ids.Lookup(ctx, in.UploaderID)
	if err != nil {
		if errors.Is(err, identityDomain.ErrNotFound) {
			return nil, identityDomain.ErrPermissionDenied
		}
		return nil, err
	}

	var out *programDomain.Program
	err = u.uow.WithinProgramTx(ctx, in.ProgramID, func(r uow.Repos, p *programDomain.Program) error {
		current := make(programDomain.DocumentList, 0, len(in.Documents))
		for _, d := range in.Documents {
			if d.StoredName == "" {
				return fmt.Errorf("%w: document stored_name is required", programDomain.ErrValidation)
			}
			current = append(current, programDomain.DocumentRef{
				Category:     d.Category,
				OriginalName: d.OriginalName,
				StoredName:   d.StoredName,
			})

			exists, err := r.Documents.ExistsByStoredName(ctx, p.ProgramID, d.StoredName)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			v := &documentDomain.Version{
				ProgramID:    p.ProgramID,
				Category:     d.Category,
				OriginalName: d.OriginalName,
				StoredName:   d.StoredName,
				UploadedBy:   uploader.UserID,
			}
			if err := r.Documents.Create(ctx, v); err != nil {
				return err
			}
		}

		// last-write-wins current view; history stays in the ledger
		p.Documents = current
		if err := r.Programs.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, programDomain.ErrNotFound
		}
		return nil, err
	}

	u.notifier.Send(ctx, notification.ToAdmins(
		"Program documents updated",
		fmt.Sprintf("%s uploaded %d document(s) to %q", uploader.Name, len(in.Documents), out.Title),
		notification.SeverityInfo,
	))
	return out, nil
}

// History returns the full ledger for a program with computed version
// numbers: rows are walked in insertion order and numbered per category.
func (u *Usecase) History(ctx context.Context, programID string) ([]VersionDTO, error) {
	rows, err := u.docs.ListByProgramID(ctx, programID)
	if err != nil {
		return nil, err
	}
	perCategory := make(map[string]int)
	out := make([]VersionDTO, 0, len(rows))
	for _, row := range rows {
		perCategory[row.Category]++
		out = append(out, VersionDTO{
			Category:     row.Category,
			OriginalName: row.OriginalName,
			StoredName:   row.StoredName,
			UploadedBy:   row.UploadedBy,
			Version:      perCategory[row.Category],
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}
