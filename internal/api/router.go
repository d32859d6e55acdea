package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/randytsao24/subwayfood/internal/api/handlers"
	"github.com/randytsao24/subwayfood/internal/cache"
	"github.com/randytsao24/subwayfood/internal/config"
	"github.com/randytsao24/subwayfood/internal/location"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(
	cfg *config.Config,
	ds *location.Dataset,
	commuter handlers.CommuteProvider,
	webFS fs.FS,
) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logging)
	r.Use(Recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(Timeout(cfg.RequestTimeout))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(ds.Stations, ds.Restaurants)
	rootHandler := handlers.NewRootHandler()
	atlasHandler := handlers.NewAtlasHandler(ds.Stations, ds.Restaurants, ds.Lines)
	statsHandler := handlers.NewStatsHandler(ds.Stations, ds.Restaurants)
	commuterHandler := handlers.NewCommuterHandler(
		ds.Stations,
		ds.Lines,
		commuter,
		cache.New[handlers.CommuteResult](cfg.CacheSize, cfg.CacheTTL),
	)

	// Serve frontend (if provided)
	if webFS != nil {
		r.Handle("/*", http.FileServer(http.FS(webFS)))
	} else {
		r.Get("/", rootHandler.Index)
	}

	// Core routes
	r.Get("/api", rootHandler.Index)
	r.Get("/health", healthHandler.Health)

	// Food atlas
	r.Route("/atlas", func(r chi.Router) {
		r.Get("/info", atlasHandler.GetInfo)
		r.Get("/lines", atlasHandler.ListLines)

		r.Route("/stations", func(r chi.Router) {
			r.Get("/", atlasHandler.ListStations)
			r.Get("/selectable", atlasHandler.SelectableStations)
			r.Get("/{stationId}", atlasHandler.GetStation)
			r.Get("/{stationId}/restaurants", atlasHandler.GetStationRestaurants)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/diversity", statsHandler.Diversity)
			r.Get("/boroughs", statsHandler.Boroughs)
			r.Get("/cuisines", statsHandler.Cuisines)
			r.Get("/prices", statsHandler.Prices)
		})
	})

	// Commuter food finder
	r.Get("/commuter/route", commuterHandler.GetRoute)

	r.NotFound(rootHandler.NotFound)

	return r
}
