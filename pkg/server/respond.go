package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/BeerCatalog/pkg/api"
	"droscher.com/BeerCatalog/pkg/service"
)

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidBody = errors.New("invalid request body")
)

type ErrorResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Status  int              `json:"status"`
	Errors  []api.FieldError `json:"errors,omitempty"`
}

func parseID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	return uint(id), nil
}

func decode(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationError *api.ValidationError
		response        ErrorResponse
	)

	requestField := zap.String("request_id", RequestID(r.Context()))

	switch {
	case errors.As(err, &validationError):
		s.logger.Debug("validation failed", requestField, zap.Error(err))

		response = ErrorResponse{Code: "VALIDATION_FAILED", Message: "validation failed", Status: http.StatusBadRequest, Errors: validationError.Fields}
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidBody):
		s.logger.Debug("bad request", requestField, zap.Error(err))

		response = ErrorResponse{Code: "BAD_REQUEST", Message: err.Error(), Status: http.StatusBadRequest}
	case errors.Is(err, service.ErrNotFound):
		s.logger.Info("not found", requestField, zap.Error(err))

		response = ErrorResponse{Code: "NOT_FOUND", Message: err.Error(), Status: http.StatusNotFound}
	default:
		s.logger.Error("error handling request", requestField, zap.Error(err))

		response = ErrorResponse{Code: "INTERNAL_ERROR", Message: "internal server error", Status: http.StatusInternalServerError}
	}

	s.respondJSON(w, response.Status, response)
}
