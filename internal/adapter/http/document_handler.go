package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	documentuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/document"
)

type DocumentHandler struct{ uc *documentuc.Usecase }

func NewDocumentHandler(uc *documentuc.Usecase) *DocumentHandler { return &DocumentHandler{uc: uc} }

type recordDocumentsReq struct {
	Documents []documentuc.DocumentInput `json:"documents" validate:"required,min=1,dive"`
}

func (h *DocumentHandler) RecordDocuments(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req recordDocumentsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.Record(c.Request().Context(), documentuc.RecordInput{
		ProgramID:  c.Param("program_id"),
		UploaderID: aid,
		Documents:  req.Documents,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *DocumentHandler) DocumentHistory(c echo.Context) error {
	out, err := h.uc.History(c.Request().Context(), c.Param("program_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
