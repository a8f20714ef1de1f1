package searchfx

import (
	"go.uber.org/fx"

	"venuehub/internal/api/controllers"
	"venuehub/internal/repositories"
	"venuehub/internal/services"
	"venuehub/pkg/memcache"
)

var Module = fx.Provide(
	provideQueryCache,
	provideSearchService,
	provideHybridService,
	provideBackfillService,
	controllers.NewSearchController,
	controllers.NewAdminController)

func provideQueryCache() memcache.QueryEmbeddingCache {
	return memcache.NewQueryEmbeddingCache()
}

func provideSearchService(
	venueRepo repositories.VenueRepository,
	reviewRepo repositories.ReviewRepository,
	embeddingService services.EmbeddingServiceInterface,
) services.SearchServiceInterface {
	return services.NewSearchService(venueRepo, reviewRepo, embeddingService.Dimensions())
}

func provideHybridService(
	venueRepo repositories.VenueRepository,
	embeddingService services.EmbeddingServiceInterface,
	searchService services.SearchServiceInterface,
	queryCache memcache.QueryEmbeddingCache,
) services.HybridSearchServiceInterface {
	return services.NewHybridSearchService(venueRepo, embeddingService, searchService, queryCache)
}

func provideBackfillService(
	venueRepo repositories.VenueRepository,
	reviewRepo repositories.ReviewRepository,
	embeddingService services.EmbeddingServiceInterface,
) services.BackfillServiceInterface {
	return services.NewBackfillService(venueRepo, reviewRepo, embeddingService, services.DefaultBackfillDelay)
}
