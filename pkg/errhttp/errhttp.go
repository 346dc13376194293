// Package errhttp maps item domain errors to HTTP responses.
// Add a case to mapErrorToStatus for each new error kind.
package errhttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes the error envelope.
// Validation kinds keep their message, ITEM_NOT_FOUND names the id, and
// everything else becomes a generic 500 whose cause is logged and sent to
// Sentry but never written to the client.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		ctx := r.Context()
		log.ErrorContext(ctx, "request failed",
			"error", err,
			"kind", kindTag(err),
			"method", r.Method,
			"path", r.URL.Path,
		)
		telemetry.CaptureError(ctx, err, map[string]string{
			"kind":        kindTag(err),
			"http.method": r.Method,
		})
	}
	httpx.JSONError(w, status, clientMessage(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case itemdomain.IsValidation(err):
		return http.StatusBadRequest // 400
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

func clientMessage(err error, status int) string {
	var e *itemdomain.Error
	if status == http.StatusNotFound && errors.As(err, &e) {
		return fmt.Sprintf("Item not found: id=%d", e.ItemID)
	}
	return httpx.SafeError(err, status)
}

// kindTag labels err for logs and Sentry; foreign errors read "unknown".
func kindTag(err error) string {
	if kind := itemdomain.KindOf(err); kind != "" {
		return string(kind)
	}
	return "unknown"
}
