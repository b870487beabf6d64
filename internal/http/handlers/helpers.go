package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/service/parcel"
)

const bodyLimit = 1 << 20

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logx.OrNop(logger).Error("json encode error",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

type errResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logx.OrNop(logger).Warn("http_error",
		logx.String("request_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, errResponse{Error: msg})
}

func writeValidation(logger logx.Logger, w http.ResponseWriter, r *http.Request, details map[string]string) {
	logx.OrNop(logger).Warn("http_error",
		logx.String("request_id", reqID(r.Context())),
		logx.Int("status", http.StatusBadRequest),
		logx.Any("details", details),
	)
	writeJSON(logger, w, r, http.StatusBadRequest, errResponse{Error: "Validation failed", Details: details})
}

// writeServiceError maps service errors onto the HTTP error taxonomy. Internal
// failures are logged with their cause and answered with a generic message.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		details := apperr.FieldsOf(err)
		if details == nil {
			details = map[string]string{"body": err.Error()}
		}
		writeValidation(logger, w, r, details)
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(logger, w, r, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, parcel.ErrCustomerNotFound):
		writeError(logger, w, r, http.StatusNotFound, "Customer not found")
	case errors.Is(err, parcel.ErrParcelNotFound):
		writeError(logger, w, r, http.StatusNotFound, "Parcel not found")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, "Not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, "already exists")
	case errors.Is(err, apperr.ErrRateLimited):
		writeError(logger, w, r, http.StatusTooManyRequests, "too many requests")
	default:
		logx.OrNop(logger).Error("request failed",
			logx.String("request_id", reqID(r.Context())),
			logx.String("method", r.Method),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a single JSON document. Unknown fields are ignored.
func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(logger, w, r, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(logger, w, r, http.StatusBadRequest, "empty body")
		default:
			writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		}
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}
