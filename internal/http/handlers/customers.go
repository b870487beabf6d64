package handlers

import (
	"net/http"
	"strconv"

	"fastkart-parcels/internal/auth"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
)

// CustomerHandler serves customer endpoints.
type CustomerHandler struct {
	logger logx.Logger
	uc     customerUsecase
}

// NewCustomerHandler wires the customer use cases into HTTP handlers.
func NewCustomerHandler(logger logx.Logger, uc customerUsecase) *CustomerHandler {
	return &CustomerHandler{logger: logx.OrNop(logger), uc: uc}
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.CustomerFilter{Search: q.Get("search")}
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeValidation(h.logger, w, r, map[string]string{"limit": "must be a positive integer"})
			return
		}
		f.Limit = v
	}

	list, err := h.uc.List(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string][]customerDTO{"customers": customersToResponse(list)})
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if details := validateRequest(req); details != nil {
		writeValidation(h.logger, w, r, details)
		return
	}

	p, _ := auth.PrincipalFrom(r.Context())
	c, err := h.uc.Create(r.Context(), req.toInput(), p.UserID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	h.logger.Info("customer created",
		logx.String("customer_id", c.ID), logx.String("user_id", p.UserID))
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]customerDTO{"customer": customerToResponse(*c)})
}
