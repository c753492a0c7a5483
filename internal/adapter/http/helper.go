package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	queryDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/query"
)

// actorID extracts the caller identity from the X-User-Id header. Who the
// caller *is* was already settled by the surrounding auth layer; the workflow
// core only needs the id for role checks.
func actorID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get("X-User-Id"))
}

// writeErr maps domain errors to HTTP responses with a machine-checkable
// category. Internal errors never leak details to the caller.
func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, programDomain.ErrNotFound), errors.Is(err, queryDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Code: "not_found", Error: err.Error()})
	case errors.Is(err, programDomain.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "validation", Error: err.Error()})
	case errors.Is(err, identityDomain.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Code: "permission", Error: err.Error()})
	case errors.Is(err, programDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Code: "conflict", Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "internal", Error: "internal error"})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
