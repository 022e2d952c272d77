// Package respond writes JSON bodies and maps domain errors to HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/expense"
	"github.com/MrJamesThe3rd/mikropanel/internal/importer"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/lock"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/remittance"
	"github.com/MrJamesThe3rd/mikropanel/internal/shipment"
	"github.com/MrJamesThe3rd/mikropanel/internal/user"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
	Missing map[string]int    `json:"missing,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorResponse{Error: msg})
}

func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Message(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

var notFound = []error{
	adjustment.ErrNotFound,
	client.ErrNotFound,
	closing.ErrNotFound,
	collection.ErrNotFound,
	expense.ErrNotFound,
	inventory.ErrNotFound,
	remittance.ErrNotFound,
	shipment.ErrNotFound,
	user.ErrNotFound,
	zone.ErrNotFound,
}

var conflict = []error{
	adjustment.ErrDuplicate,
	inventory.ErrDuplicateGain,
	inventory.ErrNotAssignable,
	inventory.ErrNotRouterMovement,
	inventory.ErrNotSale,
	lock.ErrNotObtained,
	remittance.ErrExceedsRemaining,
	shipment.ErrInvalidTransition,
	user.ErrDuplicate,
	zone.ErrDuplicate,
	zone.ErrInUse,
}

func matches(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}

	return false
}

// Error writes err with the status its kind maps to. Unknown errors are logged
// and answered with a generic 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr  *validation.Error
		stock *inventory.StockError
	)

	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, errorResponse{Error: validation.ErrInvalid.Error(), Fields: verr.Fields})
	case errors.Is(err, period.ErrInvalidMonth), errors.Is(err, importer.ErrNoHeader):
		Message(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &stock):
		JSON(w, http.StatusConflict, errorResponse{Error: inventory.ErrOutOfStock.Error(), Missing: stock.Missing})
	case errors.Is(err, inventory.ErrOutOfStock):
		Message(w, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		Message(w, http.StatusUnauthorized, "invalid credentials")
	case matches(err, notFound):
		Message(w, http.StatusNotFound, err.Error())
	case matches(err, conflict):
		Message(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		Message(w, http.StatusInternalServerError, "internal error")
	}
}

// Month parses the {month} URL parameter.
func Month(r *http.Request) (period.Month, error) {
	return period.Parse(chi.URLParam(r, "month"))
}
