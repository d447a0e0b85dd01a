package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// maxBodyBytes caps request bodies; every body here is a handful of strings.
const maxBodyBytes = 64 << 10

// writeServiceError maps service errors onto API errors. Anything
// unrecognised is logged and reported as a 500 with fallback as message.
// Token errors never get here; httpx.AuthnMiddleware answers those itself.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		tasksdk.NewValidationError(verr.Error()).WriteError(w)
	case errors.Is(err, service.ErrValidation):
		tasksdk.NewValidationError(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrUserExists):
		tasksdk.ErrUserExists.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		tasksdk.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		tasksdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrTaskNotFound):
		tasksdk.ErrTaskNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error(fallback, "err", err)
		tasksdk.NewServerError(fallback).WriteError(w)
	}
}

// decodeBody reads a single JSON object from the request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &service.ValidationError{Field: "body", Message: "is required"}
		}
		return &service.ValidationError{Field: "body", Message: fmt.Sprintf("is not valid JSON (%s)", jsonProblem(err))}
	}
	return nil
}

func jsonProblem(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxErr):
		return "syntax error"
	case errors.As(err, &typeErr):
		return "wrong type for " + typeErr.Field
	case errors.As(err, &maxErr):
		return "too large"
	default:
		return "malformed"
	}
}
