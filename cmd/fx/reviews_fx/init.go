package reviewsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"venuehub/internal/api/controllers"
	"venuehub/internal/repositories"
	"venuehub/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo,
	provideReviewService,
	controllers.NewReviewsController)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	venueRepo repositories.VenueRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, venueRepo)
}
