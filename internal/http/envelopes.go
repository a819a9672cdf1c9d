package http

import (
	"net/http"

	"budgetd/internal/apperr"
	"budgetd/internal/metrics"
	"budgetd/internal/model"
	"budgetd/internal/repository"
	"budgetd/internal/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const (
	opList     = "list"
	opGet      = "get"
	opCreate   = "create"
	opUpdate   = "update"
	opDelete   = "delete"
	opTransfer = "transfer"
)

// fail translates err into a plain-text response, matching the legacy wire
// format, and records the outcome.
func fail(c echo.Context, op string, err error) error {
	status, msg := apperr.Translate(err)
	outcome := "client_error"
	if status >= http.StatusInternalServerError {
		outcome = "server_error"
		log.Errorf("%s failed: %v", op, err)
	}
	metrics.EnvelopeOps.WithLabelValues(op, outcome).Inc()
	return c.String(status, msg)
}

func done(op string) {
	metrics.EnvelopeOps.WithLabelValues(op, "ok").Inc()
}

// lookupCandidate fetches the rows the validator needs: the envelope owning
// the candidate's id (when the id coerces) and the one owning its name.
func lookupCandidate(c echo.Context, envs repository.EnvelopesRepository, cand validate.Candidate) (byID, byName *model.Envelope, err error) {
	ctx := c.Request().Context()
	if id, ok := validate.ParseID(cand.ID); ok {
		if byID, err = envs.GetByID(ctx, id); err != nil {
			return nil, nil, err
		}
	}
	if cand.Name != "" {
		if byName, err = envs.GetByName(ctx, cand.Name); err != nil {
			return nil, nil, err
		}
	}
	return byID, byName, nil
}

func listEnvelopesHandler(envs repository.EnvelopesRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := envs.List(c.Request().Context())
		if err != nil {
			return fail(c, opList, err)
		}
		if rows == nil {
			rows = []model.Envelope{}
		}
		done(opList)
		return c.JSON(http.StatusOK, rows)
	}
}

func getEnvelopeHandler(envs repository.EnvelopesRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		env, err := resolveEnvelope(c, envs)
		if err != nil {
			return fail(c, opGet, err)
		}
		done(opGet)
		return c.JSON(http.StatusOK, env)
	}
}

func createEnvelopeHandler(envs repository.EnvelopesRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var cand validate.Candidate
		if err := c.Bind(&cand); err != nil {
			return fail(c, opCreate, apperr.ErrInvalidInput)
		}

		byID, byName, err := lookupCandidate(c, envs, cand)
		if err != nil {
			return fail(c, opCreate, err)
		}
		n, err := validate.Envelope(cand, byID, byName)
		if err != nil {
			return fail(c, opCreate, err)
		}
		if byName != nil {
			// id and name matched an existing envelope exactly
			return fail(c, opCreate, apperr.ErrUseUpdate)
		}

		var out model.Envelope
		if n.ID != nil {
			out = model.Envelope{ID: *n.ID, Name: n.Name, Amount: n.Amount}
			if err := envs.InsertWithID(c.Request().Context(), out); err != nil {
				return fail(c, opCreate, err)
			}
		} else {
			id, err := envs.Insert(c.Request().Context(), n.Name, n.Amount)
			if err != nil {
				return fail(c, opCreate, err)
			}
			out = model.Envelope{ID: id, Name: n.Name, Amount: n.Amount}
		}

		done(opCreate)
		return c.JSON(http.StatusCreated, out)
	}
}

func updateEnvelopeHandler(envs repository.EnvelopesRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		current, err := resolveEnvelope(c, envs)
		if err != nil {
			return fail(c, opUpdate, err)
		}

		var cand validate.Candidate
		if err := c.Bind(&cand); err != nil {
			return fail(c, opUpdate, apperr.ErrInvalidInput)
		}

		byID, byName, err := lookupCandidate(c, envs, cand)
		if err != nil {
			return fail(c, opUpdate, err)
		}
		n, err := validate.Envelope(cand, byID, byName)
		if err != nil {
			return fail(c, opUpdate, err)
		}

		rows, err := envs.Update(c.Request().Context(), current.ID, n.Name, n.Amount)
		if err != nil {
			return fail(c, opUpdate, err)
		}
		if rows != 1 {
			return fail(c, opUpdate, apperr.ErrUnexpected)
		}

		done(opUpdate)
		return c.JSON(http.StatusOK, model.Envelope{ID: current.ID, Name: n.Name, Amount: n.Amount})
	}
}

func deleteEnvelopeHandler(envs repository.EnvelopesRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		env, err := resolveEnvelope(c, envs)
		if err != nil {
			return fail(c, opDelete, err)
		}
		if env.Amount != 0 {
			return fail(c, opDelete, apperr.ErrNotEmpty)
		}

		rows, err := envs.Delete(c.Request().Context(), env.ID)
		if err != nil {
			return fail(c, opDelete, err)
		}
		if rows != 1 {
			return fail(c, opDelete, apperr.ErrUnexpected)
		}

		done(opDelete)
		return c.NoContent(http.StatusNoContent)
	}
}

// resolveEnvelope parses the :id path parameter and loads the matching row.
// A malformed or unknown id both report ErrInvalidInput, as the legacy
// service did.
func resolveEnvelope(c echo.Context, envs repository.EnvelopesRepository) (*model.Envelope, error) {
	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return nil, apperr.ErrInvalidInput
	}
	env, err := envs.GetByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, apperr.ErrInvalidInput
	}
	return env, nil
}
