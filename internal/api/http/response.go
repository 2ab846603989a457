package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/utils"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error ErrorResponse `json:"error"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: ErrorResponse{Code: code, Message: message}}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// writeError maps err to a status code and error code. Unclassified errors
// are logged and answered with an opaque message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	message := err.Error()
	var de *domain.Error
	if errors.As(err, &de) {
		message = de.Message
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "code", code, "error", err)
		message = "An internal error occurred"
	}
	writeErrorBody(w, status, code, message)
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return domain.InvalidArgument("Could not read request body")
	}
	if len(body) == 0 {
		return domain.InvalidArgument("Request body is required")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return domain.InvalidArgument("Malformed request body")
	}
	return nil
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.InvalidArgument("Invalid %s: %s", name, raw)
	}
	return int32(id), nil
}

// optionalDate parses a yyyy-mm-dd value; empty yields nil.
func optionalDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return nil, domain.InvalidArgument("%s: %v", field, err)
	}
	return &t, nil
}

// optionalInstant accepts an RFC 3339 timestamp or a yyyy-mm-dd date. A bare
// date used as an upper bound covers the whole day.
func optionalInstant(field, value string, upper bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return nil, domain.InvalidArgument("%s: expected RFC 3339 timestamp or yyyy-mm-dd date", field)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
