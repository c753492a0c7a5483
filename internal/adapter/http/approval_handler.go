package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	approvaluc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approvaluc.Usecase }

func NewApprovalHandler(uc *approvaluc.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type approveReq struct {
	VoucherNumber string `json:"voucher_number" validate:"required"`
	EFTNumber     string `json:"eft_number"     validate:"required"`
}

func (h *ApprovalHandler) ApproveProgram(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.Approve(c.Request().Context(), approvaluc.ApproveInput{
		ProgramID:     c.Param("program_id"),
		ActorID:       aid,
		VoucherNumber: req.VoucherNumber,
		EFTNumber:     req.EFTNumber,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ApprovalHandler) RejectProgram(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.Reject(c.Request().Context(), approvaluc.RejectInput{
		ProgramID: c.Param("program_id"),
		ActorID:   aid,
		Reason:    req.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ApprovalHandler) AcceptDocument(c echo.Context) error {
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-User-Id header"})
	}
	p, err := h.uc.AcceptDocument(c.Request().Context(), c.Param("program_id"), aid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
