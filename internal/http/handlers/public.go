package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fastkart-parcels/internal/logx"
)

// PublicHandler serves the unauthenticated tracking lookup.
type PublicHandler struct {
	logger  logx.Logger
	parcels parcelUsecase
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(logger logx.Logger, parcels parcelUsecase) *PublicHandler {
	return &PublicHandler{logger: logx.OrNop(logger), parcels: parcels}
}

// Parcel handles GET /api/public/parcel/{id}; id is a public id or a tracking id.
func (h *PublicHandler) Parcel(w http.ResponseWriter, r *http.Request) {
	p, err := h.parcels.PublicLookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]publicParcelDTO{"parcel": publicParcelToResponse(*p)})
}
