package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

const internalErrorMessage = "Internal server error"

// businessErrors are rule violations reported to the caller as 400.
var businessErrors = []error{
	domain.ErrVariantNotFound,
	domain.ErrInsufficientStock,
	domain.ErrCartItemNotFound,
	domain.ErrCartEmpty,
	domain.ErrCouponInvalid,
	domain.ErrCouponLimitReached,
	domain.ErrMinimumSpendNotMet,
	domain.ErrInvalidOption,
	domain.ErrAlreadyVoted,
	domain.ErrInvalidCategories,
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps usecase errors to an HTTP status and the message shown to
// the caller. Unknown errors are logged and hidden.
func statusFor(r *http.Request, err error) (int, string) {
	var validation *domain.ValidationError
	var limited *domain.RateLimitedError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message
	case errors.As(err, &limited):
		return http.StatusTooManyRequests, "Too many requests"
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrPollNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	}
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	return http.StatusInternalServerError, internalErrorMessage
}

func setRetryAfter(w http.ResponseWriter, err error) {
	var limited *domain.RateLimitedError
	if !errors.As(err, &limited) {
		return
	}
	seconds := int(math.Ceil(limited.RetryAfter.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
}

// writeError answers public endpoints with {"error": message}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := statusFor(r, err)
	setRetryAfter(w, err)
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeAdminError answers back-office endpoints with {"ok": false, "message": message}.
func writeAdminError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := statusFor(r, err)
	setRetryAfter(w, err)
	writeJSON(w, code, map[string]any{"ok": false, "message": msg})
}

func writeAdminOK(w http.ResponseWriter, code int, key string, v any) {
	body := map[string]any{"ok": true}
	if key != "" {
		body[key] = v
	}
	writeJSON(w, code, body)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid json")
	}
	return nil
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
