package controllers_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewReviewController))
