package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"droscher.com/BeerCatalog/configs"
	"droscher.com/BeerCatalog/pkg/service"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Services struct {
	Beers      *service.BeerService
	Breweries  *service.BreweryService
	Categories *service.CategoryService
	Styles     *service.StyleService
}

type Server struct {
	beers      *service.BeerService
	breweries  *service.BreweryService
	categories *service.CategoryService
	styles     *service.StyleService
	pinger     Pinger
	config     configs.Server
	logger     *zap.Logger
}

func NewServer(config configs.Server, services Services, pinger Pinger, logger *zap.Logger) *Server {
	return &Server{
		beers:      services.Beers,
		breweries:  services.Breweries,
		categories: services.Categories,
		styles:     services.Styles,
		pinger:     pinger,
		config:     config,
		logger:     logger,
	}
}

// Handler builds the router. Resource routes live under the configured base
// path; the health check is always served at /health.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(s.cors().Handler)

	router.Get("/health", s.health)

	if s.config.BasePath == "" {
		s.routes(router)
	} else {
		router.Route(s.config.BasePath, s.routes)
	}

	return router
}

func (s *Server) routes(router chi.Router) {
	router.Route("/beers", func(router chi.Router) {
		router.Get("/", s.getBeers)
		router.Post("/", s.createBeer)
		router.Get("/{id}", s.getBeer)
		router.Put("/{id}", s.updateBeer)
		router.Patch("/{id}", s.patchBeer)
		router.Delete("/{id}", s.deleteBeer)
	})

	router.Get("/breweries", s.getBreweries)
	router.Get("/breweries/{id}", s.getBrewery)
	router.Get("/categories", s.getCategories)
	router.Get("/categories/{id}", s.getCategory)
	router.Get("/styles", s.getStyles)
	router.Get("/styles/{id}", s.getStyle)
}

func (s *Server) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			requestIDHeader,
		},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         86400, // 24 hours
	})
}
