package handlers

import (
	"net/http"
	"time"

	"fastkart-parcels/internal/logx"
)

// AnalyticsHandler serves the dashboard analytics.
type AnalyticsHandler struct {
	logger logx.Logger
	uc     analyticsUsecase
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(logger logx.Logger, uc analyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logx.OrNop(logger), uc: uc}
}

// Report handles GET /api/analytics?startDate=&endDate=.
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	details := map[string]string{}
	start := queryTime(details, q.Get("startDate"), "startDate")
	end := queryTime(details, q.Get("endDate"), "endDate")
	if len(details) > 0 {
		writeValidation(h.logger, w, r, details)
		return
	}

	rep, err := h.uc.Report(r.Context(), start, end)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, analyticsToResponse(rep))
}

func queryTime(details map[string]string, s, name string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseTime(s)
	if err != nil {
		details[name] = err.Error()
		return nil
	}
	return &t
}
