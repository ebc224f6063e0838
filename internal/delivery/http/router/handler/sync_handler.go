// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "kindling/internal/delivery/context"
	"kindling/internal/delivery/http/response"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/infra/metrics"
	"kindling/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SyncHandler serves the push/pull dispatch endpoints the client sync engine
// talks to.
type SyncHandler struct {
	mutations usecase.MutationUsecase
	queries   usecase.QueryUsecase
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler, injected by Fx.
func NewSyncHandler(mutations usecase.MutationUsecase, queries usecase.QueryUsecase, recorder metrics.Recorder, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		mutations: mutations,
		queries:   queries,
		recorder:  recorder,
		logger:    logger,
	}
}

type pushRequest struct {
	Mutations []usecase.Mutation `json:"mutations"`
}

type pushResponse struct {
	Mutations []usecase.MutationResult `json:"mutations"`
}

// Push applies a batch of named mutations for the caller. Each mutation
// reports its own outcome; a failed mutation never blocks the rest of the
// batch.
func (h *SyncHandler) Push(c echo.Context) error {
	caller, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input pushRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push payload")
	}

	start := time.Now()
	results := h.mutations.PushBatch(c.Request().Context(), caller, input.Mutations)
	h.recorder.RecordDispatchLatency(time.Since(start))

	for _, result := range results {
		outcome := "ok"
		if result.Error != nil {
			outcome = "error"
		}
		h.recorder.RecordMutation(result.Name, outcome)
	}

	return response.Success(c, http.StatusOK, pushResponse{Mutations: results}, "Push applied")
}

type pullRequest struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Pull runs one named query for the caller and returns the materialized
// rows. Unknown names fail explicitly.
func (h *SyncHandler) Pull(c echo.Context) error {
	caller, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input pullRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pull payload")
	}

	start := time.Now()
	rows, err := h.queries.Execute(c.Request().Context(), caller, input.Name, input.Args)
	h.recorder.RecordDispatchLatency(time.Since(start))
	if err != nil {
		h.recorder.RecordQuery(input.Name, "error")

		return errors.WithStack(err)
	}
	h.recorder.RecordQuery(input.Name, "ok")

	return response.Success(c, http.StatusOK, rows, "Query executed")
}
