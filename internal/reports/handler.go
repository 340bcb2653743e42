package reports

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/propfolio/propfolio/internal/platform/httpx"
)

// Handler exposes the report engine as a JSON API.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/rent-roll", h.rentRoll)
	r.Get("/overdue", h.overdueRent)
	r.Get("/lease-expiry", h.leaseExpiry)
	r.Get("/rent-charges", h.rentCharges)
}

// MountTenantRoutes registers tenant-scoped routes.
func (h *Handler) MountTenantRoutes(r chi.Router) {
	r.Get("/{id}/statement", h.tenantStatement)
}

type rentRollQuery struct {
	PropertyID string `validate:"omitempty,max=64"`
	Month      string `validate:"required,datetime=2006-01"`
	UnitType   string `validate:"omitempty,max=64"`
	Occupancy  string `validate:"omitempty,oneof=occupied vacant all"`
}

func (h *Handler) rentRoll(w http.ResponseWriter, r *http.Request) {
	q := rentRollQuery{
		PropertyID: r.URL.Query().Get("property_id"),
		Month:      r.URL.Query().Get("month"),
		UnitType:   r.URL.Query().Get("unit_type"),
		Occupancy:  r.URL.Query().Get("occupancy"),
	}
	if err := h.validate.Struct(q); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	month, _ := time.ParseInLocation("2006-01", q.Month, time.UTC)

	report, err := h.service.RentRoll(r.Context(), RentRollFilter{
		PropertyID: q.PropertyID,
		Month:      month,
		UnitType:   q.UnitType,
		Occupancy:  q.Occupancy,
	})
	if err != nil {
		h.logger.Error("build rent roll", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

type overdueQuery struct {
	PropertyID   string `validate:"omitempty,max=64"`
	Days         int    `validate:"gte=0,lte=3650"`
	TenantStatus string `validate:"omitempty,oneof=active moved_out all"`
}

func (h *Handler) overdueRent(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: days must be an integer", httpx.ErrValidation))
			return
		}
		days = parsed
	}
	q := overdueQuery{
		PropertyID:   r.URL.Query().Get("property_id"),
		Days:         days,
		TenantStatus: r.URL.Query().Get("tenant_status"),
	}
	if err := h.validate.Struct(q); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}

	report, err := h.service.OverdueRent(r.Context(), OverdueFilter{
		PropertyID:   q.PropertyID,
		MinDays:      q.Days,
		TenantStatus: q.TenantStatus,
	})
	if err != nil {
		h.logger.Error("build overdue rent", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

type leaseExpiryQuery struct {
	PropertyID string `validate:"omitempty,max=64"`
	RangeDays  int    `validate:"gte=0,lte=3650"`
}

func (h *Handler) leaseExpiry(w http.ResponseWriter, r *http.Request) {
	rangeDays := 0
	if raw := r.URL.Query().Get("range_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: range_days must be an integer", httpx.ErrValidation))
			return
		}
		rangeDays = parsed
	}
	q := leaseExpiryQuery{PropertyID: r.URL.Query().Get("property_id"), RangeDays: rangeDays}
	if err := h.validate.Struct(q); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}

	report, err := h.service.LeaseExpiry(r.Context(), LeaseExpiryFilter{
		PropertyID: q.PropertyID,
		RangeDays:  q.RangeDays,
	})
	if err != nil {
		h.logger.Error("build lease expiry", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

type rentChargesQuery struct {
	PropertyID string `validate:"omitempty,max=64"`
	Month      string `validate:"required,datetime=2006-01"`
}

func (h *Handler) rentCharges(w http.ResponseWriter, r *http.Request) {
	q := rentChargesQuery{
		PropertyID: r.URL.Query().Get("property_id"),
		Month:      r.URL.Query().Get("month"),
	}
	if err := h.validate.Struct(q); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	month, _ := time.ParseInLocation("2006-01", q.Month, time.UTC)

	report, err := h.service.RentCharges(r.Context(), RentChargesFilter{
		PropertyID: q.PropertyID,
		Month:      month,
	})
	if err != nil {
		h.logger.Error("build rent charges", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

type statementQuery struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

func (h *Handler) tenantStatement(w http.ResponseWriter, r *http.Request) {
	q := statementQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if err := h.validate.Struct(q); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	start, _ := time.ParseInLocation("2006-01-02", q.Start, time.UTC)
	end, _ := time.ParseInLocation("2006-01-02", q.End, time.UTC)
	if end.Before(start) {
		httpx.RespondError(w, fmt.Errorf("%w: end before start", httpx.ErrValidation))
		return
	}

	priorBalance := 0.0
	if raw := r.URL.Query().Get("prior_balance"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: prior_balance must be numeric", httpx.ErrValidation))
			return
		}
		priorBalance = parsed
	}

	stmt, err := h.service.TenantStatement(r.Context(), chi.URLParam(r, "id"), start, end, priorBalance)
	if err != nil {
		h.logger.Error("build tenant statement", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stmt)
}
