package response

import (
	"encoding/json"
	"net/http"

	"github.com/minervatires/site-api/pkg/logger"
)

// Result is the envelope both form endpoints and the admin API use.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	BookingID int64  `json:"booking_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func Failure(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Result{Success: false, Message: message})
}
