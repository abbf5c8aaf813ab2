package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"card-auction/internal/auctionerrors"
	"card-auction/utils"

	"github.com/gin-gonic/gin"
)

// CallerRefHeader carries the external identity reference the upstream
// identity provider authenticated. Credential validation is not done
// here; the engine resolves the reference to a profile.
const CallerRefHeader = "X-User-Ref"

// CallerRef extracts the caller's identity reference, failing the
// request when it is absent.
func CallerRef(c *gin.Context) (string, bool) {
	ref := c.GetHeader(CallerRefHeader)
	if ref == "" {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing "+CallerRefHeader+" header"), "caller identity required")
		return "", false
	}
	return ref, true
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, auctionerrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid argument"
	case errors.Is(err, auctionerrors.ErrInvalidState):
		return http.StatusBadRequest, "operation not valid in current state"
	case errors.Is(err, auctionerrors.ErrPermissionDenied):
		return http.StatusForbidden, "permission denied"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps the error, sends the JSON error body and logs it.
// On a 5xx the response carries only the generic message; the wrapped
// chain with store detail goes to the log, never to the client.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		utils.JSONError(c, status, errors.New(message), message)
		utils.Error(handlerName+": "+message, map[string]any{"error": err.Error()})
		return
	}
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	utils.Warn(handlerName+": "+message, map[string]any{"error": err.Error()})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
