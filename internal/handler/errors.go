package handler

import (
	"asset-management-api/pkg/errors"
	"encoding/json"
	"log"
	"net/http"
)

// ErrorHandler provides centralized response writing for handlers
type ErrorHandler struct {
	Logger *log.Logger
}

// NewErrorHandler creates a new ErrorHandler instance
func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorHandler{
		Logger: logger,
	}
}

// SendErrorResponse sends the failure envelope
func (e *ErrorHandler) SendErrorResponse(w http.ResponseWriter, statusCode int, message string, code errors.ErrorCode) {
	e.SendJSONResponse(w, statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// SendSuccessResponse sends a 200 with success set alongside data's keys
func (e *ErrorHandler) SendSuccessResponse(w http.ResponseWriter, data map[string]interface{}) {
	body := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		body[k] = v
	}
	body["success"] = true
	e.SendJSONResponse(w, http.StatusOK, body)
}

// SendJSONResponse sends a generic JSON response
func (e *ErrorHandler) SendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		e.Logger.Printf("Failed to encode JSON response: %v", err)
		statusCode = http.StatusInternalServerError
		payload = []byte(`{"success":false,"message":"Failed to encode response","code":"INTERNAL_ERROR"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(payload, '\n')); err != nil {
		e.Logger.Printf("Failed to write response: %v", err)
	}
}

// HandleAppError maps err onto its HTTP status. Errors that are not
// AppErrors are reported as internal errors without leaking their text.
func (e *ErrorHandler) HandleAppError(w http.ResponseWriter, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.InternalError("Internal server error", err)
	}

	status := appErr.GetHTTPStatus()
	if status >= http.StatusInternalServerError {
		e.Logger.Printf("Request failed: %v", err)
	}
	e.SendErrorResponse(w, status, appErr.Message, appErr.Code)
}

// HandleJSONDecodeError handles JSON decoding errors
func (e *ErrorHandler) HandleJSONDecodeError(w http.ResponseWriter, err error) {
	e.Logger.Printf("JSON decode error: %v", err)
	e.HandleAppError(w, errors.InvalidJSONError(err))
}
