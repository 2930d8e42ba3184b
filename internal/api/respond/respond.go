// Package respond writes the JSON envelope shared by every endpoint:
// {"success", "code", "message", "data"}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/dom/debt-ledger/internal/logger"
)

type Envelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON writes a success envelope with the given HTTP status.
func JSON(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, status, Envelope{Success: true, Code: status, Message: message, Data: data})
}

// JSONWithCode writes a success envelope whose body code differs from the
// HTTP status, e.g. a delete answered with 200 that reports 204.
func JSONWithCode(w http.ResponseWriter, status, code int, message string) {
	write(w, status, Envelope{Success: true, Code: code, Message: message})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Code: status, Message: message})
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error().Err(err).Msg("failed to encode response")
	}
}
