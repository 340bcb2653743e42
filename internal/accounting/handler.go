package accounting

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/propfolio/propfolio/internal/platform/httpx"
)

// Handler exposes the accounting projections as a JSON API.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers accounting routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/trial-balance", h.report(func(ctx context.Context, f Filter) (any, error) {
		return h.service.TrialBalance(ctx, f)
	}))
	r.Get("/balance-sheet", h.report(func(ctx context.Context, f Filter) (any, error) {
		return h.service.BalanceSheet(ctx, f)
	}))
	r.Get("/cashflow", h.report(func(ctx context.Context, f Filter) (any, error) {
		return h.service.Cashflow(ctx, f)
	}))
	r.Get("/general-ledger", h.report(func(ctx context.Context, f Filter) (any, error) {
		return h.service.GeneralLedger(ctx, f)
	}))
}

type filterQuery struct {
	PropertyID string `validate:"omitempty,max=64"`
	From       string `validate:"omitempty,datetime=2006-01-02"`
	To         string `validate:"omitempty,datetime=2006-01-02"`
	AccountID  string `validate:"omitempty,number"`
}

func (h *Handler) parseFilter(r *http.Request) (Filter, error) {
	q := filterQuery{
		PropertyID: r.URL.Query().Get("property_id"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
		AccountID:  r.URL.Query().Get("account_id"),
	}
	if err := h.validate.Struct(q); err != nil {
		return Filter{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}

	f := Filter{PropertyID: q.PropertyID}
	if q.From != "" {
		f.From, _ = time.ParseInLocation("2006-01-02", q.From, time.UTC)
	}
	if q.To != "" {
		f.To, _ = time.ParseInLocation("2006-01-02", q.To, time.UTC)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return Filter{}, fmt.Errorf("%w: to before from", httpx.ErrValidation)
	}
	if q.AccountID != "" {
		f.AccountID, _ = strconv.ParseInt(q.AccountID, 10, 64)
	}
	return f, nil
}

func (h *Handler) report(run func(context.Context, Filter) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := h.parseFilter(r)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		result, err := run(r.Context(), f)
		if err != nil {
			h.logger.Error("build accounting report", slog.String("path", r.URL.Path), slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, result)
	}
}
