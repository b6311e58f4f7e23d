// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/mixgraph/internal/constraint"
	"github.com/tomtom215/mixgraph/internal/library"
	"github.com/tomtom215/mixgraph/internal/optimizer"
)

// errRequestTooLarge is reported when the body exceeds the configured limit.
var errRequestTooLarge = errors.New("request body too large")

// classifyError maps a handler error to its HTTP status, error code and
// client-facing message.
func classifyError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, optimizer.ErrInvalidInput):
		return http.StatusBadRequest, ErrCodeInvalidInput, err.Error()
	case errors.Is(err, library.ErrInvalidLibrary):
		return http.StatusBadRequest, ErrCodeInvalidInput, err.Error()
	case errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound, "Library not found"
	case errors.Is(err, constraint.ErrEvaluation):
		return http.StatusUnprocessableEntity, ErrCodeConstraint, "A playlist constraint could not be evaluated"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeTimeout, "Optimization timed out"
	case errors.Is(err, errRequestTooLarge):
		return http.StatusRequestEntityTooLarge, ErrCodeInvalidInput, "Request body too large"
	default:
		return http.StatusInternalServerError, ErrCodeInternal, "Internal server error"
	}
}

// errorReason is the metrics label for a failed optimization.
func errorReason(code string) string {
	return strings.ToLower(code)
}

func respondClassified(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classifyError(err)
	respondError(w, r, status, code, message, err)
}
