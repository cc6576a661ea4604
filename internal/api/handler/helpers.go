package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/corpomate/cesimdash/internal/api/response"
)

// pathID parses the {id} URL parameter. On failure it writes a 400 and
// reports false.
func pathID(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidID, "id must be a valid UUID", requestID)
		return uuid.Nil, false
	}
	return id, true
}

// internalError logs err and writes a 500 carrying message, which must not
// leak err.
func internalError(w http.ResponseWriter, requestID, message string, err error, attrs ...any) {
	logMsg := strings.ToLower(message[:1]) + message[1:]
	slog.Error(logMsg, append([]any{"error", err, "requestId", requestID}, attrs...)...)
	response.Err(w, http.StatusInternalServerError, response.CodeInternal, message, requestID)
}
