package venuesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"venuehub/internal/api/controllers"
	"venuehub/internal/repositories"
	"venuehub/internal/services"
)

var Module = fx.Provide(
	provideVenueRepo,
	provideVenueService,
	controllers.NewVenuesController)

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideVenueService(venueRepo repositories.VenueRepository) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo)
}
