package billing

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/aws-billing/pkg/dates"
	"github.com/de-tools/aws-billing/pkg/models/api"
	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/de-tools/aws-billing/pkg/services/billing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const defaultSummaryMonths = 6

type Handler struct {
	explorer   billing.Explorer
	dateFormat string
	now        func() time.Time
}

func NewHandler(explorer billing.Explorer, dateFormat string) *Handler {
	return &Handler{
		explorer:   explorer,
		dateFormat: dateFormat,
		now:        time.Now,
	}
}

func (h *Handler) GetCosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.explorer.GetCostAndUsage(ctx, dr, h.granularity(r, domain.GranularityDaily), nil)
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) GetCostsByService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.explorer.GetCostByService(ctx, dr, h.granularity(r, domain.GranularityMonthly))
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) GetCostsByAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.explorer.GetCostByAccount(ctx, dr, h.granularity(r, domain.GranularityMonthly))
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) GetCostsByRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.explorer.GetCostByRegion(ctx, dr, h.granularity(r, domain.GranularityMonthly))
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) GetCostsByResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	ids := splitParam(r.URL.Query().Get("ids"))
	result, err := h.explorer.GetCostByResource(ctx, dr, ids, h.granularity(r, domain.GranularityDaily))
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) GetCostsByTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	key := chi.URLParam(r, "key")
	values := splitParam(r.URL.Query().Get("values"))

	result, err := h.explorer.GetCostByTag(ctx, dr, key, values, h.granularity(r, domain.GranularityDaily))
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	metric := domain.ForecastMetric(r.URL.Query().Get("metric"))
	result, err := h.explorer.GetCostForecast(ctx, dr, h.granularity(r, domain.GranularityMonthly), metric)
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	months := defaultSummaryMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, r, http.StatusBadRequest, errInvalidMonths(raw))
			return
		}
		months = parsed
	}

	result, err := h.explorer.GetMonthlySummary(ctx, months)
	if err != nil {
		h.writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) parseRange(w http.ResponseWriter, r *http.Request) (domain.DateRange, bool) {
	dr, err := dates.ParseRange(
		r.URL.Query().Get("start"),
		r.URL.Query().Get("end"),
		h.dateFormat,
		h.now(),
	)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return domain.DateRange{}, false
	}
	return dr, true
}

func (h *Handler) granularity(r *http.Request, fallback domain.Granularity) domain.Granularity {
	if g := r.URL.Query().Get("granularity"); g != "" {
		return domain.Granularity(g)
	}
	return fallback
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Int("status", status).
		Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: err.Error()})
}
