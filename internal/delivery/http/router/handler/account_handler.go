package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "kindling/internal/delivery/context"
	"kindling/internal/delivery/http/response"
	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/infra/metrics"
	"kindling/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler manages connected external accounts and post imports.
type AccountHandler struct {
	uc       usecase.AccountUsecase
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, recorder metrics.Recorder, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:       uc,
		recorder: recorder,
		logger:   logger,
	}
}

// List returns the caller's connected accounts with credentials redacted.
func (h *AccountHandler) List(c echo.Context) error {
	caller, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	accounts, err := h.uc.ListAccounts(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved")
}

// ConnectBluesky links a Bluesky account with an app password.
func (h *AccountHandler) ConnectBluesky(c echo.Context) error {
	caller, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *usecase.ConnectBlueskyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect input")
	}

	account, err := h.uc.ConnectBluesky(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Account connected")
}

// Disconnect removes the caller's account for the provider in the path.
func (h *AccountHandler) Disconnect(c echo.Context) error {
	caller, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	provider := entity.Provider(c.Param("provider"))
	if err := h.uc.Disconnect(c.Request().Context(), caller, provider); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account disconnected"}, "Account disconnected")
}

// Import pulls the caller's recent posts from the provider and captures
// them as published artifacts.
func (h *AccountHandler) Import(c echo.Context) error {
	caller, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	provider := entity.Provider(c.Param("provider"))
	output, err := h.uc.ImportPosts(c.Request().Context(), caller, provider)
	if err != nil {
		return errors.WithStack(err)
	}

	h.recorder.RecordImport(output.Imported, output.Skipped)

	return response.Success(c, http.StatusOK, output, "Import completed")
}
