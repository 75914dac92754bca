// Package webapi writes the uniform {success, data, message} envelope every
// endpoint returns, and maps service errors onto HTTP status codes:
// validation 400, not found 404, anything unexpected 500.
package webapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oakhaven/schoolhub/internal/app/system/crud"
	"go.uber.org/zap"
)

// Envelope is the sole inter-layer response contract.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes a 200 envelope.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage writes a 200 envelope with a message.
func OKMessage(w http.ResponseWriter, data any, msg string) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data, Message: msg})
}

// Created writes a 201 envelope.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Success: false, Data: nil, Message: msg})
}

// Error maps a service error onto the envelope. Unexpected errors are logged
// and surface their text with a 500, matching the controller catch-all.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, crud.ErrNotFound):
		Fail(w, http.StatusNotFound, err.Error())
	case crud.IsValidation(err):
		Fail(w, http.StatusBadRequest, err.Error())
	default:
		if log != nil {
			log.Error("request failed", zap.Error(err))
		}
		Fail(w, http.StatusInternalServerError, err.Error())
	}
}

// Decode reads the request body as JSON into v. A syntactically invalid body
// is a validation failure, not a server error.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &crud.ValidationError{Msg: "invalid request body"}
	}
	return nil
}
