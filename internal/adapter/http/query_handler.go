package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	queryuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/query"
)

type QueryHandler struct{ uc *queryuc.Usecase }

func NewQueryHandler(uc *queryuc.Usecase) *QueryHandler { return &QueryHandler{uc: uc} }

type raiseQueryReq struct {
	Question string `json:"question" validate:"required"`
}

func (h *QueryHandler) RaiseQuery(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req raiseQueryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Raise(c.Request().Context(), queryuc.RaiseInput{
		ProgramID: c.Param("program_id"),
		AskerID:   aid,
		Question:  req.Question,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type answerQueryReq struct {
	Answer string `json:"answer" validate:"required"`
}

func (h *QueryHandler) AnswerQuery(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req answerQueryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Answer(c.Request().Context(), queryuc.AnswerInput{
		QueryID:    c.Param("query_id"),
		AnswererID: aid,
		Answer:     req.Answer,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
