package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"tripmate/cmd/fx/dbfx"
	"tripmate/cmd/fx/placesfx"
	"tripmate/cmd/fx/plannerfx"
	"tripmate/cmd/fx/tripsfx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		dbfx.Module,
		placesfx.Module,
		plannerfx.Module,
		tripsfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	tripsController *controllers.TripsController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("", plannerController.PreviewPlanHandler)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripsController.CreateTripHandler)
	tripsGroup.GET("/:id", tripsController.GetTripHandler)
	tripsGroup.POST("/:id/plan", tripsController.GeneratePlanHandler)
}
