package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deductionuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/deduction"
)

type DeductionHandler struct{ uc *deductionuc.Usecase }

func NewDeductionHandler(uc *deductionuc.Usecase) *DeductionHandler {
	return &DeductionHandler{uc: uc}
}

type deductReq struct {
	Amount string `json:"amount" validate:"required,decimalstr"`
	Reason string `json:"reason" validate:"required"`
}

func (h *DeductionHandler) DeductBudget(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req deductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Deduct(c.Request().Context(), deductionuc.DeductInput{
		ProgramID: c.Param("program_id"),
		ActorID:   aid,
		Amount:    req.Amount,
		Reason:    req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
