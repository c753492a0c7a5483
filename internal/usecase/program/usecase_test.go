package program

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/uow"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/testutil/deductionmock"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/testutil/identitymock"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/testutil/notifymock"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/testutil/programmock"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/testutil/querymock"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/testutil/remarkmock"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/testutil/uowmock"
)

var testUsers = identitymock.Directory(
	identityDomain.User{UserID: "owner-1", Name: "Aung Kyaw", Role: identityDomain.RoleApplicant},
	identityDomain.User{UserID: "fin-1", Name: "Finance One", Role: identityDomain.RoleFinance},
	identityDomain.User{UserID: "admin-1", Name: "Admin One", Role: identityDomain.RoleAdmin},
)

func newUsecase(repo *programmock.Repo, sink *notifymock.Dispatcher) *Usecase {
	tx := uowmock.Passthrough(uow.Repos{
		Programs:   repo,
		Queries:    &querymock.Repo{},
		Remarks:    &remarkmock.Repo{},
		Deductions: &deductionmock.Repo{},
	})
	return NewUsecase(repo, tx, testUsers, identityDomain.NewPolicy(), notification.NewNotifier(sink))
}

func draftProgram(programID, ownerID string) *programDomain.Program {
	return &programDomain.Program{
		ID:                    42,
		ProgramID:             programID,
		OwnerID:               ownerID,
		Title:                 "Rural road upgrade",
		LetterReferenceNumber: "REF-001",
		Status:                programDomain.StatusDraft,
	}
}

func TestUsecase_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateProgramInput
		wantErr error
		check   func(t *testing.T, dto *ProgramDTO)
	}{
		{
			name: "only letter reference set",
			in:   CreateProgramInput{OwnerID: "owner-1", LetterReferenceNumber: "REF-001"},
			check: func(t *testing.T, dto *ProgramDTO) {
				if dto.Status != "draft" {
					t.Fatalf("status = %q, want draft", dto.Status)
				}
				if !dto.Budget.IsZero() {
					t.Fatalf("budget = %s, want 0", dto.Budget)
				}
				if len(dto.Objectives) != 0 || len(dto.KPIs) != 0 || len(dto.Documents) != 0 {
					t.Fatalf("expected empty collections, got %+v", dto)
				}
				if dto.ProgramID == "" {
					t.Fatalf("program id not generated")
				}
			},
		},
		{
			name:    "missing letter reference",
			in:      CreateProgramInput{OwnerID: "owner-1"},
			wantErr: programDomain.ErrValidation,
		},
		{
			name:    "unknown owner",
			in:      CreateProgramInput{OwnerID: "nobody", LetterReferenceNumber: "REF-002"},
			wantErr: programDomain.ErrValidation,
		},
		{
			name:    "negative budget",
			in:      CreateProgramInput{OwnerID: "owner-1", LetterReferenceNumber: "REF-003", Budget: "-100"},
			wantErr: programDomain.ErrValidation,
		},
		{
			name: "full payload",
			in: CreateProgramInput{
				OwnerID:               "owner-1",
				LetterReferenceNumber: "REF-004",
				Title:                 "School meals",
				Budget:                "150000.50",
				StartDate:             "2026-01-01",
				EndDate:               "2026-06-30",
				Objectives:            []string{"feed students"},
				KPIs:                  []KPIInput{{Name: "meals served", Target: "10000"}},
			},
			check: func(t *testing.T, dto *ProgramDTO) {
				if dto.Budget.StringFixed(2) != "150000.50" {
					t.Fatalf("budget = %s", dto.Budget)
				}
				if dto.StartDate == nil || dto.EndDate == nil {
					t.Fatalf("dates not parsed")
				}
				if len(dto.KPIs) != 1 || dto.KPIs[0].Name != "meals served" {
					t.Fatalf("kpis = %+v", dto.KPIs)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &programmock.Repo{}
			uc := newUsecase(repo, &notifymock.Dispatcher{})

			dto, err := uc.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			tt.check(t, dto)
		})
	}
}

func TestUsecase_Submit(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		state   programDomain.Status
		wantErr error
	}{
		{name: "owner submits draft", actor: "owner-1", state: programDomain.StatusDraft},
		{name: "non-owner denied", actor: "fin-1", state: programDomain.StatusDraft, wantErr: identityDomain.ErrPermissionDenied},
		{name: "already submitted", actor: "owner-1", state: programDomain.StatusSubmitted, wantErr: programDomain.ErrInvalidTransition},
		{name: "unknown actor", actor: "nobody", state: programDomain.StatusDraft, wantErr: identityDomain.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := draftProgram("prog-1", "owner-1")
			p.Status = tt.state
			repo := &programmock.Repo{
				GetByProgramIDForUpdateFn: func(ctx context.Context, programID string) (*programDomain.Program, error) {
					return p, nil
				},
			}
			sink := &notifymock.Dispatcher{}
			uc := newUsecase(repo, sink)

			dto, err := uc.Submit(context.Background(), "prog-1", tt.actor)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if dto.Status != "submitted" || dto.SubmittedAt == nil || dto.SubmittedBy != "owner-1" {
				t.Fatalf("submit not stamped: %+v", dto)
			}
			sent := sink.Sent()
			if len(sent) != 1 || sent[0].Recipient != nil {
				t.Fatalf("expected one admin notification, got %+v", sent)
			}
		})
	}
}

func TestUsecase_Submit_NotFound(t *testing.T) {
	repo := &programmock.Repo{
		GetByProgramIDForUpdateFn: func(context.Context, string) (*programDomain.Program, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newUsecase(repo, &notifymock.Dispatcher{})

	_, err := uc.Submit(context.Background(), "missing", "owner-1")
	if !errors.Is(err, programDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUsecase_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		status  string
		wantErr error
	}{
		{name: "admin may overwrite", actor: "admin-1", status: "approved"},
		{name: "applicant denied", actor: "owner-1", status: "approved", wantErr: identityDomain.ErrPermissionDenied},
		{name: "finance denied", actor: "fin-1", status: "approved", wantErr: identityDomain.ErrPermissionDenied},
		{name: "unknown status rejected", actor: "admin-1", status: "archived", wantErr: programDomain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := draftProgram("prog-1", "owner-1")
			p.Status = programDomain.StatusSubmitted
			var saved bool
			repo := &programmock.Repo{
				GetByProgramIDForUpdateFn: func(context.Context, string) (*programDomain.Program, error) {
					return p, nil
				},
				SaveFn: func(ctx context.Context, sp *programDomain.Program) error {
					saved = true
					return nil
				},
			}
			uc := newUsecase(repo, &notifymock.Dispatcher{})

			dto, err := uc.UpdateStatus(context.Background(), "prog-1", tt.actor, tt.status)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err %v, got %v", tt.wantErr, err)
				}
				if saved {
					t.Fatalf("program saved despite error")
				}
				if p.Status != programDomain.StatusSubmitted {
					t.Fatalf("status mutated to %q on failed overwrite", p.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if dto.Status != tt.status {
				t.Fatalf("status = %q, want %q", dto.Status, tt.status)
			}
		})
	}
}

func TestUsecase_UpdateFields(t *testing.T) {
	title := "Updated title"
	badBudget := "not-a-number"
	goodBudget := "2500.00"

	tests := []struct {
		name    string
		actor   string
		in      UpdateFieldsInput
		wantErr error
	}{
		{name: "owner updates title", actor: "owner-1", in: UpdateFieldsInput{Title: &title}},
		{name: "admin updates title", actor: "admin-1", in: UpdateFieldsInput{Title: &title}},
		{name: "finance denied", actor: "fin-1", in: UpdateFieldsInput{Title: &title}, wantErr: identityDomain.ErrPermissionDenied},
		{name: "bad budget", actor: "owner-1", in: UpdateFieldsInput{Budget: &badBudget}, wantErr: programDomain.ErrValidation},
		{name: "good budget", actor: "owner-1", in: UpdateFieldsInput{Budget: &goodBudget}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := draftProgram("prog-1", "owner-1")
			repo := &programmock.Repo{
				GetByProgramIDForUpdateFn: func(context.Context, string) (*programDomain.Program, error) {
					return p, nil
				},
			}
			uc := newUsecase(repo, &notifymock.Dispatcher{})

			dto, err := uc.UpdateFields(context.Background(), "prog-1", tt.actor, tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tt.in.Title != nil && dto.Title != *tt.in.Title {
				t.Fatalf("title = %q, want %q", dto.Title, *tt.in.Title)
			}
			if tt.in.Budget != nil && dto.Budget.StringFixed(2) != *tt.in.Budget {
				t.Fatalf("budget = %s, want %s", dto.Budget, *tt.in.Budget)
			}
		})
	}
}

func TestUsecase_Delete(t *testing.T) {
	p := draftProgram("prog-1", "owner-1")
	var deletedBy string
	repo := &programmock.Repo{
		GetByProgramIDFn: func(context.Context, string) (*programDomain.Program, error) {
			return p, nil
		},
		DeleteFn: func(ctx context.Context, dp *programDomain.Program, by string) error {
			deletedBy = by
			return nil
		},
	}
	sink := &notifymock.Dispatcher{}
	uc := newUsecase(repo, sink)

	if err := uc.Delete(context.Background(), "prog-1", "owner-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deletedBy != "owner-1" {
		t.Fatalf("deletedBy = %q", deletedBy)
	}
	sent := sink.Sent()
	if len(sent) != 1 || sent[0].Recipient != nil {
		t.Fatalf("expected deletion notification to admins, got %+v", sent)
	}

	// finance may not delete someone else's program
	if err := uc.Delete(context.Background(), "prog-1", "fin-1"); !errors.Is(err, identityDomain.ErrPermissionDenied) {
		t.Fatalf("want permission denied, got %v", err)
	}
}

func TestUsecase_AddRemark(t *testing.T) {
	p := draftProgram("prog-1", "owner-1")
	repo := &programmock.Repo{
		GetByProgramIDFn: func(context.Context, string) (*programDomain.Program, error) {
			return p, nil
		},
	}
	uc := newUsecase(repo, &notifymock.Dispatcher{})

	if _, err := uc.AddRemark(context.Background(), "prog-1", "fin-1", ""); !errors.Is(err, programDomain.ErrValidation) {
		t.Fatalf("want validation error for empty text, got %v", err)
	}

	dto, err := uc.AddRemark(context.Background(), "prog-1", "fin-1", "checked supporting letter")
	if err != nil {
		t.Fatalf("AddRemark: %v", err)
	}
	if dto.AuthorID != "fin-1" || dto.Text != "checked supporting letter" || dto.RemarkID == "" {
		t.Fatalf("remark dto = %+v", dto)
	}
}
