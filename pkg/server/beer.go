package server

import (
	"net/http"

	"droscher.com/BeerCatalog/pkg/api"
)

func (s *Server) getBeers(w http.ResponseWriter, r *http.Request) {
	beers, err := s.beers.GetBeers(r.Context())
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	s.respondJSON(w, http.StatusOK, beers)
}

func (s *Server) getBeer(w http.ResponseWriter, r *http.Request) {
	beerID, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	beer, err := s.beers.GetBeer(r.Context(), beerID)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	s.respondJSON(w, http.StatusOK, beer)
}

func (s *Server) createBeer(w http.ResponseWriter, r *http.Request) {
	var input api.Beer

	if err := decode(r, &input); err != nil {
		s.respondError(w, r, err)

		return
	}

	if err := input.Validate(); err != nil {
		s.respondError(w, r, err)

		return
	}

	beer, err := s.beers.CreateBeer(r.Context(), &input)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	s.respondJSON(w, http.StatusCreated, beer)
}

func (s *Server) updateBeer(w http.ResponseWriter, r *http.Request) {
	beerID, input, err := s.beerInput(r, (*api.Beer).Validate)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	beer, err := s.beers.UpdateBeer(r.Context(), beerID, input)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	s.respondJSON(w, http.StatusOK, beer)
}

func (s *Server) patchBeer(w http.ResponseWriter, r *http.Request) {
	beerID, input, err := s.beerInput(r, (*api.Beer).ValidatePatch)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	beer, err := s.beers.PatchBeer(r.Context(), beerID, input)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	s.respondJSON(w, http.StatusOK, beer)
}

func (s *Server) deleteBeer(w http.ResponseWriter, r *http.Request) {
	beerID, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	if err = s.beers.DeleteBeer(r.Context(), beerID); err != nil {
		s.respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// beerInput parses the path id and the request body, then validates the body.
func (s *Server) beerInput(r *http.Request, validate func(*api.Beer) error) (uint, *api.Beer, error) {
	beerID, err := parseID(r)
	if err != nil {
		return 0, nil, err
	}

	var input api.Beer

	if err = decode(r, &input); err != nil {
		return 0, nil, err
	}

	if err = validate(&input); err != nil {
		return 0, nil, err
	}

	return beerID, &input, nil
}
