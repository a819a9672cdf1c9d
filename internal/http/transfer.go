package http

import (
	"net/http"

	"budgetd/internal/apperr"
	"budgetd/internal/service/transfer"
	"budgetd/internal/validate"
	"github.com/labstack/echo/v4"
)

type transferRequest struct {
	Amount any `json:"amount"`
}

// transferHandler moves funds between two envelopes. Every precondition
// failure (unparseable ids or amount included) reports insufficient funds,
// which is the legacy contract for this route.
func transferHandler(svc *transfer.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		fromID, okFrom := validate.ParseID(c.Param("fromID"))
		toID, okTo := validate.ParseID(c.Param("toID"))

		var req transferRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, opTransfer, apperr.ErrInsufficientFunds)
		}
		amount, okAmount := validate.ParseAmount(req.Amount)

		if !okFrom || !okTo || !okAmount {
			return fail(c, opTransfer, apperr.ErrInsufficientFunds)
		}

		if err := svc.Transfer(c.Request().Context(), fromID, toID, amount); err != nil {
			return fail(c, opTransfer, err)
		}

		done(opTransfer)
		return c.String(http.StatusOK, "Transfer succesfull!")
	}
}
