package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

// writeServiceError maps the lifecycle error taxonomy onto JSON responses.
// Unexpected failures are logged with their cause and answered with an
// opaque body; internal error text never reaches the caller.
func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrInvalidDetails):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid quiz data received"})
	case errors.Is(err, quiz.ErrQuizNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "quiz not found"})
	case errors.Is(err, quiz.ErrAnswersPending):
		writeJSON(w, http.StatusAccepted, pendingResponse{Message: "quiz not yet completed"})
	default:
		a.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethod string) {
	w.Header().Set("Allow", allowedMethod)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
