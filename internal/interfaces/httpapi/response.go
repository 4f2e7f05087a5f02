package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-live/internal/usecase"
)

const (
	envelopeVersion = "2.0"
	errorDomain     = "football-live"
)

// envelope follows the Google JSON style guide: exactly one of data or
// error is set.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	sentinel error
	code     int
	reason   string
	status   string
}

// First match wins.
var errorClasses = []errorClass{
	{usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
	{usecase.ErrNotFound, http.StatusNotFound, "notFound", "NOT_FOUND"},
	{usecase.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"},
	{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"},
	{usecase.ErrTransientFetch, http.StatusBadGateway, "upstreamUnavailable", "UNAVAILABLE"},
	{usecase.ErrMalformedPayload, http.StatusBadGateway, "upstreamMalformed", "INTERNAL"},
}

var internalClass = errorClass{code: http.StatusInternalServerError, reason: "internalError", status: "INTERNAL"}

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.sentinel) {
			return c
		}
	}
	return internalClass
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{APIVersion: envelopeVersion, Data: data})
}

func writeError(_ context.Context, w http.ResponseWriter, err error) {
	c := classify(err)
	msg := err.Error()
	if c.code == http.StatusInternalServerError {
		msg = "internal server error"
	}
	writeClassified(w, c, msg)
}

func writeInternalError(_ context.Context, w http.ResponseWriter) {
	writeClassified(w, internalClass, "internal server error")
}

func writeClassified(w http.ResponseWriter, c errorClass, msg string) {
	writeJSON(w, c.code, envelope{
		APIVersion: envelopeVersion,
		Error: &errorBody{
			Code:    c.code,
			Message: msg,
			Status:  c.status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: c.reason, Message: msg}},
		},
	})
}
