package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
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
	programuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/program"
)

// -------- helpers --------

var ownerHex = strings.Repeat("b", 32)

var handlerUsers = identitymock.Directory(
	identityDomain.User{UserID: ownerHex, Name: "Aung Kyaw", Role: identityDomain.RoleApplicant},
	identityDomain.User{UserID: "admin-1", Name: "Admin One", Role: identityDomain.RoleAdmin},
	identityDomain.User{UserID: "fin-1", Name: "Finance One", Role: identityDomain.RoleFinance},
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newProgramHandler(repo *programmock.Repo) *ProgramHandler {
	tx := uowmock.Passthrough(uow.Repos{
		Programs:   repo,
		Queries:    &querymock.Repo{},
		Remarks:    &remarkmock.Repo{},
		Deductions: &deductionmock.Repo{},
	})
	usecase := programuc.NewUsecase(repo, tx, handlerUsers, identityDomain.NewPolicy(), notification.NewNotifier(&notifymock.Dispatcher{}))
	return NewProgramHandler(usecase)
}

// -------- tests --------

func TestCreateProgram_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := newProgramHandler(&programmock.Repo{})

	reqBody := map[string]any{
		"owner_id":                ownerHex,
		"letter_reference_number": "REF-2026-001",
		"title":                   "Village road upgrade",
		"budget":                  "250000.00",
		"objectives":              []string{"improve access"},
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/programs", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateProgram(c); err != nil {
		t.Fatalf("CreateProgram error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var got programuc.ProgramDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.OwnerID != ownerHex || got.LetterReferenceNumber != "REF-2026-001" {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.Status != string(programDomain.StatusDraft) {
		t.Fatalf("status = %s, want draft", got.Status)
	}
	if got.ProgramID == "" {
		t.Fatalf("program_id not assigned")
	}
}

func TestCreateProgram_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := newProgramHandler(&programmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/programs", strings.NewReader(`{"owner_id":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateProgram(c); err != nil {
		t.Fatalf("CreateProgram error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateProgram_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newProgramHandler(&programmock.Repo{})

	// owner not hex32, letter ref missing
	reqBody := map[string]any{"owner_id": "nope"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/programs", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateProgram(c); err != nil {
		t.Fatalf("CreateProgram error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(er.Details, "OwnerID", "32-char lowercase hex") {
		t.Fatalf("missing owner_id detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "LetterReferenceNumber", "is required") {
		t.Fatalf("missing letter ref detail: %+v", er.Details)
	}
}

func TestGetProgram_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &programmock.Repo{
		GetByProgramIDFn: func(context.Context, string) (*programDomain.Program, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newProgramHandler(repo)

	req := httptest.NewRequest(stdhttp.MethodGet, "/programs/"+strings.Repeat("e", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("program_id")
	c.SetParamValues(strings.Repeat("e", 32))

	if err := h.GetProgram(c); err != nil {
		t.Fatalf("GetProgram error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Code != "not_found" {
		t.Fatalf("code = %q, want not_found", er.Code)
	}
}

func TestSubmitProgram_MissingActorHeader(t *testing.T) {
	e := newEchoWithValidator()
	h := newProgramHandler(&programmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/programs/x/submit", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("program_id")
	c.SetParamValues("x")

	if err := h.SubmitProgram(c); err != nil {
		t.Fatalf("SubmitProgram error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitProgram_NonOwnerForbidden(t *testing.T) {
	e := newEchoWithValidator()
	p := &programDomain.Program{
		ProgramID:             strings.Repeat("c", 32),
		OwnerID:               ownerHex,
		LetterReferenceNumber: "REF-1",
		Status:                programDomain.StatusDraft,
	}
	repo := &programmock.Repo{
		GetByProgramIDForUpdateFn: func(context.Context, string) (*programDomain.Program, error) {
			return p, nil
		},
	}
	h := newProgramHandler(repo)

	req := httptest.NewRequest(stdhttp.MethodPost, "/programs/"+p.ProgramID+"/submit", nil)
	req.Header.Set("X-User-Id", "fin-1") // reviewer, not the owner
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("program_id")
	c.SetParamValues(p.ProgramID)

	if err := h.SubmitProgram(c); err != nil {
		t.Fatalf("SubmitProgram error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	e := newEchoWithValidator()
	p := &programDomain.Program{
		ProgramID: strings.Repeat("d", 32),
		OwnerID:   ownerHex,
		Status:    programDomain.StatusDraft,
	}
	repo := &programmock.Repo{
		GetByProgramIDForUpdateFn: func(context.Context, string) (*programDomain.Program, error) {
			return p, nil
		},
	}
	h := newProgramHandler(repo)

	req := httptest.NewRequest(stdhttp.MethodPatch, "/programs/"+p.ProgramID+"/status", mustJSON(map[string]any{"status": "galactic"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-User-Id", "admin-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("program_id")
	c.SetParamValues(p.ProgramID)

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Code != "validation" {
		t.Fatalf("code = %q, want validation", er.Code)
	}
	if p.Status != programDomain.StatusDraft {
		t.Fatalf("status mutated: %q", p.Status)
	}
}

func TestUpdateStatus_NonAdminForbidden(t *testing.T) {
	e := newEchoWithValidator()
	p := &programDomain.Program{
		ProgramID: strings.Repeat("d", 32),
		OwnerID:   ownerHex,
		Status:    programDomain.StatusDraft,
	}
	repo := &programmock.Repo{
		GetByProgramIDForUpdateFn: func(context.Context, string) (*programDomain.Program, error) {
			return p, nil
		},
	}
	h := newProgramHandler(repo)

	req := httptest.NewRequest(stdhttp.MethodPatch, "/programs/"+p.ProgramID+"/status", mustJSON(map[string]any{"status": "approved"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-User-Id", ownerHex) // owner, but not admin
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("program_id")
	c.SetParamValues(p.ProgramID)

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body %s)", rec.Code, rec.Body.String())
	}
}
