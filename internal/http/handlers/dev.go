package handlers

import (
	"crypto/subtle"
	"net/http"

	"fastkart-parcels/internal/logx"
)

// SeedConfig is the development owner bootstrap configuration.
type SeedConfig struct {
	Enabled  bool // only in the development environment
	Secret   string
	Email    string
	Password string
	Name     string
}

// DevHandler serves development-only helpers.
type DevHandler struct {
	logger logx.Logger
	users  userUsecase
	cfg    SeedConfig
}

// NewDevHandler creates a DevHandler.
func NewDevHandler(logger logx.Logger, users userUsecase, cfg SeedConfig) *DevHandler {
	return &DevHandler{logger: logx.OrNop(logger), users: users, cfg: cfg}
}

// SeedOwner handles POST /api/dev/seed-owner.
func (h *DevHandler) SeedOwner(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.Enabled {
		writeError(h.logger, w, r, http.StatusNotFound, "Not found")
		return
	}
	got := r.Header.Get("X-Seed-Secret")
	if h.cfg.Secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.Secret)) != 1 {
		writeError(h.logger, w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, created, err := h.users.SeedOwner(r.Context(), h.cfg.Email, h.cfg.Password, h.cfg.Name)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if !created {
		writeJSON(h.logger, w, r, http.StatusOK, seedOwnerResponse{Message: "Owner user already exists", Email: u.Email})
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, seedOwnerResponse{Message: "Owner user created", Email: u.Email})
}
