package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Message: "invalid request",
		Fields:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			field := err.Field()
			res.Fields[field] = err.Tag()
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

// WriteFieldError reports a single invalid field.
func WriteFieldError(w http.ResponseWriter, field, reason string) error {
	return WriteJSON(w, ValidationErrorResponse{
		Message: "invalid request",
		Fields:  map[string]string{field: reason},
	}, http.StatusBadRequest)
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

func WriteCodedError(w http.ResponseWriter, message, errCode string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message, Code: errCode}, code)
}

// QueryInt reads a positive integer query parameter, falling back to def.
func QueryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
