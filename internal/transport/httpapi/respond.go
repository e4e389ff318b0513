package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/errs"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	if err != nil {
		logging.Warn(r.Context(), "request failed",
			slog.Int("status", status),
			slog.Any("err", errs.Loggable(err)),
		)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
