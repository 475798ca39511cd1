package handler

import (
	"asset-management-api/pkg/errors"
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"
)

// ServiceName is reported by the health check
const ServiceName = "asset-management-api"

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Code    errors.ErrorCode `json:"code,omitempty"`
}

// ResponseHelper provides request decoding and response shaping utilities
type ResponseHelper struct {
	now func() time.Time
}

// NewResponseHelper creates a new ResponseHelper instance
func NewResponseHelper() *ResponseHelper {
	return &ResponseHelper{now: time.Now}
}

// CreateRequestContext derives a context bounded by timeout from the request
func (rh *ResponseHelper) CreateRequestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}

// DecodeJSONBody decodes the request body into dst. An empty body or any
// well-formed value other than an object leaves dst untouched, the same as
// sending {}. Only syntactically broken JSON is an error.
func (rh *ResponseHelper) DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// CreateResourceData wraps a single record under key with a message
func (rh *ResponseHelper) CreateResourceData(key string, record interface{}, message string) map[string]interface{} {
	return map[string]interface{}{
		"message": message,
		key:       record,
	}
}

// CreateListResponseData wraps a list of records under key
func (rh *ResponseHelper) CreateListResponseData(key string, items interface{}) map[string]interface{} {
	return map[string]interface{}{
		key: items,
	}
}

// CreateHealthCheckData creates health check response data
func (rh *ResponseHelper) CreateHealthCheckData() map[string]interface{} {
	return map[string]interface{}{
		"message":   "Service is healthy",
		"timestamp": rh.now().UTC(),
		"service":   ServiceName,
		"status":    "healthy",
	}
}
