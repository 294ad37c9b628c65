package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// writeJSON serialises v as JSON and writes it to the response with the
// given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a standard JSON error response of the form
// {"detail": "message"}.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// fieldError names one offending field in a validation failure response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeValidationError turns a validator error into a 400 response listing
// the offending fields.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fields := make([]fieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, fieldError{Field: e.Field(), Message: messageFor(e)})
	}
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"detail": "validation failed",
		"fields": fields,
	})
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "pastdate":
		return "must be a date in the past"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}

// idParam parses the named integer URL parameter.
func idParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// createdLocation derives the Location of a new sub-resource: always the
// current request path plus "/{id}". Clients rely on this exact shape.
func createdLocation(r *http.Request, id int) string {
	return strings.TrimSuffix(r.URL.Path, "/") + "/" + strconv.Itoa(id)
}
