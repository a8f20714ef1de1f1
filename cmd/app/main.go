package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	conciergefx "venuehub/cmd/fx/concierge_fx"
	dbfx "venuehub/cmd/fx/db_fx"
	embeddingfx "venuehub/cmd/fx/embedding_fx"
	reviewsfx "venuehub/cmd/fx/reviews_fx"
	searchfx "venuehub/cmd/fx/search_fx"
	venuesfx "venuehub/cmd/fx/venues_fx"
	"venuehub/internal/api/controllers"
	"venuehub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		venuesfx.Module,
		reviewsfx.Module,
		embeddingfx.Module,
		searchfx.Module,
		conciergefx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	venuesController *controllers.VenuesController,
	reviewsController *controllers.ReviewsController,
	searchController *controllers.SearchController,
	adminController *controllers.AdminController,
	chatController *controllers.ChatController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, venuesController, reviewsController, searchController, adminController, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	venuesController *controllers.VenuesController,
	reviewsController *controllers.ReviewsController,
	searchController *controllers.SearchController,
	adminController *controllers.AdminController,
	chatController *controllers.ChatController) {

	v1 := r.Group("/api/v1")

	venues := v1.Group("/venues")
	venues.GET("", venuesController.ListVenues)
	venues.GET("/:id", venuesController.GetVenueById)
	venues.POST("", venuesController.CreateVenue)
	venues.PUT("/:id", venuesController.UpdateVenue)
	venues.DELETE("/:id", venuesController.DeleteVenue)
	venues.GET("/:id/reviews", reviewsController.ListByVenue)
	venues.POST("/:id/reviews", reviewsController.CreateReview)

	search := v1.Group("/search")
	search.POST("/semantic", searchController.SemanticSearch)
	search.POST("/hybrid", searchController.HybridSearch)

	admin := v1.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/embeddings/venues", adminController.BackfillVenues)
	admin.POST("/embeddings/reviews", adminController.BackfillReviews)
	admin.POST("/venues/:id/status", adminController.SetVenueStatus)

	chat := v1.Group("/chat")
	chat.Use(middleware.AgentKeyMiddleware(os.Getenv("AGENT_KEY_HASH")))
	chat.POST("", chatController.Chat)
}
