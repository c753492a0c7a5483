package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	programuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/program"
)

type ProgramHandler struct{ uc *programuc.Usecase }

func NewProgramHandler(uc *programuc.Usecase) *ProgramHandler { return &ProgramHandler{uc: uc} }

type createProgramReq struct {
	OwnerID               string                    `json:"owner_id"                validate:"required,hex32"`
	LetterReferenceNumber string                    `json:"letter_reference_number" validate:"required"`
	Title                 string                    `json:"title"`
	Description           string                    `json:"description"`
	Department            string                    `json:"department"`
	Recipient             string                    `json:"recipient"`
	Budget                string                    `json:"budget"     validate:"omitempty,decimalstr"`
	StartDate             string                    `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate               string                    `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
	Objectives            []string                  `json:"objectives"`
	KPIs                  []programuc.KPIInput      `json:"kpis"`
	Documents             []programuc.DocumentInput `json:"documents"`
}

func (h *ProgramHandler) CreateProgram(c echo.Context) error {
	var req createProgramReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), programuc.CreateProgramInput{
		OwnerID:               req.OwnerID,
		LetterReferenceNumber: req.LetterReferenceNumber,
		Title:                 req.Title,
		Description:           req.Description,
		Department:            req.Department,
		Recipient:             req.Recipient,
		Budget:                req.Budget,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		Objectives:            req.Objectives,
		KPIs:                  req.KPIs,
		Documents:             req.Documents,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProgramHandler) GetProgram(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("program_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProgramHandler) ListPrograms(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProgramHandler) ListReviewable(c echo.Context) error {
	out, err := h.uc.ListReviewable(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProgramHandler) ListByOwner(c echo.Context) error {
	out, err := h.uc.ListByOwner(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProgramHandler) SubmitProgram(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	dto, err := h.uc.Submit(c.Request().Context(), c.Param("program_id"), aid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProgramHandler) UpdateProgram(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req programuc.UpdateFieldsInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.UpdateFields(c.Request().Context(), c.Param("program_id"), aid, req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *ProgramHandler) UpdateStatus(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("program_id"), aid, req.Status)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProgramHandler) DeleteProgram(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("program_id"), aid); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type addRemarkReq struct {
	Text string `json:"text" validate:"required"`
}

func (h *ProgramHandler) AddRemark(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req addRemarkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddRemark(c.Request().Context(), c.Param("program_id"), aid, req.Text)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
