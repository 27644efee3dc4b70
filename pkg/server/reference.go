package server

import (
	"context"
	"net/http"
)

// getAll and getOne serve the read-only reference resources.
func getAll[T any](s *Server, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := list(r.Context())
		if err != nil {
			s.respondError(w, r, err)

			return
		}

		s.respondJSON(w, http.StatusOK, records)
	}
}

func getOne[T any](s *Server, get func(context.Context, uint) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			s.respondError(w, r, err)

			return
		}

		record, err := get(r.Context(), id)
		if err != nil {
			s.respondError(w, r, err)

			return
		}

		s.respondJSON(w, http.StatusOK, record)
	}
}

func (s *Server) getBreweries(w http.ResponseWriter, r *http.Request) {
	getAll(s, s.breweries.GetBreweries)(w, r)
}

func (s *Server) getBrewery(w http.ResponseWriter, r *http.Request) {
	getOne(s, s.breweries.GetBrewery)(w, r)
}

func (s *Server) getCategories(w http.ResponseWriter, r *http.Request) {
	getAll(s, s.categories.GetCategories)(w, r)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	getOne(s, s.categories.GetCategory)(w, r)
}

func (s *Server) getStyles(w http.ResponseWriter, r *http.Request) {
	getAll(s, s.styles.GetStyles)(w, r)
}

func (s *Server) getStyle(w http.ResponseWriter, r *http.Request) {
	getOne(s, s.styles.GetStyle)(w, r)
}
