package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"tripmate/cmd/fx/agents_fx"
	"tripmate/cmd/fx/config_fx"
	"tripmate/cmd/fx/controllers_fx"
	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/llm_fx"
	"tripmate/cmd/fx/memcache_fx"
	"tripmate/cmd/fx/trip_fx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/config"
	"tripmate/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		llm_fx.Module,
		agents_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
		fx.NopLogger,
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("port", cfg.Port).Msg("starting HTTP server")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	reviewController *controllers.ReviewController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, weatherController, reviewController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	reviewController *controllers.ReviewController) {

	api := r.Group("/api")

	tripGroup := api.Group("/trip")
	tripGroup.POST("/plan", tripController.PlanTrip)
	tripGroup.POST("/budget", tripController.PlanWithBudget)
	tripGroup.POST("/comprehensive", tripController.ComprehensivePlan)
	tripGroup.POST("/travel-on-my-budget", tripController.TravelOnMyBudget)
	tripGroup.POST("/flights", tripController.FlightOptions)
	tripGroup.POST("/real-flights", tripController.RealFlights)
	tripGroup.POST("/visa", tripController.Visa)
	tripGroup.POST("/packing-list", tripController.PackingList)
	tripGroup.GET("/weather", weatherController.GetWeather)
	tripGroup.GET("/search-history", tripController.SearchHistory)

	api.GET("/city-reviews", reviewController.CityReviews)
	api.POST("/weather/lookup", weatherController.LookupWeather)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
