package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"fastkart-parcels/internal/auth"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
)

// ParcelHandler serves the authenticated parcel endpoints.
type ParcelHandler struct {
	logger  logx.Logger
	uc      parcelUsecase
	created prometheus.Counter
}

// NewParcelHandler wires the parcel use cases into HTTP handlers. created may be nil.
func NewParcelHandler(logger logx.Logger, uc parcelUsecase, created prometheus.Counter) *ParcelHandler {
	return &ParcelHandler{logger: logx.OrNop(logger), uc: uc, created: created}
}

// List handles GET /api/parcels.
func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	f, details := parseParcelFilter(r.URL.Query())
	if details != nil {
		writeValidation(h.logger, w, r, details)
		return
	}
	pg, err := h.uc.List(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pageToResponse(pg))
}

// Create handles POST /api/parcels.
func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createParcelRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if details := validateRequest(req); details != nil {
		writeValidation(h.logger, w, r, details)
		return
	}
	in, details := req.toInput()
	if details != nil {
		writeValidation(h.logger, w, r, details)
		return
	}

	principal, _ := auth.PrincipalFrom(r.Context())
	p, err := h.uc.Create(r.Context(), in, principal.UserID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if h.created != nil {
		h.created.Inc()
	}
	w.Header().Set("Location", "/api/parcels/"+p.PublicID)
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]parcelDTO{"parcel": parcelToResponse(*p)})
}

// Get handles GET /api/parcels/{id}.
func (h *ParcelHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]parcelDTO{"parcel": parcelToResponse(*p)})
}

// Update handles PATCH /api/parcels/{id}. Only the members present in the body are changed.
func (h *ParcelHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateParcelRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	u, details := req.toUpdate()
	if details != nil {
		writeValidation(h.logger, w, r, details)
		return
	}

	p, err := h.uc.Update(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]parcelDTO{"parcel": parcelToResponse(*p)})
}

// Delete handles DELETE /api/parcels/{id}.
func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]bool{"success": true})
}

// Stats handles GET /api/parcels/stats.
func (h *ParcelHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.Stats(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statsToResponse(s))
}

// parseParcelFilter reads listing parameters. status and mode may repeat
// and may hold comma separated values.
func parseParcelFilter(q url.Values) (domain.ParcelFilter, map[string]string) {
	details := map[string]string{}
	f := domain.ParcelFilter{
		Search:     q.Get("search"),
		CustomerID: q.Get("customerId"),
		SortBy:     domain.SortField(q.Get("sortBy")),
	}

	f.Page = positiveInt(details, q, "page")
	f.Limit = positiveInt(details, q, "limit")

	for _, s := range multiValue(q, "status") {
		f.Statuses = append(f.Statuses, domain.ParcelStatus(strings.ToUpper(s)))
	}
	for _, m := range multiValue(q, "mode") {
		f.Modes = append(f.Modes, domain.TransportMode(strings.ToUpper(m)))
	}

	switch strings.ToLower(q.Get("sortOrder")) {
	case "", "desc":
	case "asc":
		f.Ascending = true
	default:
		details["sortOrder"] = "must be asc or desc"
	}

	if len(details) > 0 {
		return f, details
	}
	return f, nil
}

func positiveInt(details map[string]string, q url.Values, name string) int {
	s := q.Get(name)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		details[name] = "must be a positive integer"
		return 0
	}
	return v
}

func multiValue(q url.Values, name string) []string {
	var out []string
	for _, raw := range q[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
