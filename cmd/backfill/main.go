package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	embeddingfx "venuehub/cmd/fx/embedding_fx"
	"venuehub/internal/infra"
	"venuehub/internal/repositories"
	"venuehub/internal/services"
)

// Standalone backfill runner. Safe to re-run: only rows without an
// embedding are touched.
func main() {
	var (
		target  = flag.String("target", "all", "what to backfill: venues, reviews or all")
		delay   = flag.Duration("delay", services.DefaultBackfillDelay, "pause between embedding requests")
		timeout = flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	client, err := embeddingfx.ProvideEmbeddingClient()
	if err != nil {
		log.Fatalf("Failed to create embedding client: %v", err)
	}

	venueRepo := repositories.NewVenueRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	embeddingService := services.NewEmbeddingService(client)
	backfillService := services.NewBackfillService(venueRepo, reviewRepo, embeddingService, *delay)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch *target {
	case "venues":
		runVenues(ctx, backfillService)
	case "reviews":
		runReviews(ctx, backfillService)
	case "all":
		runVenues(ctx, backfillService)
		runReviews(ctx, backfillService)
	default:
		log.Fatalf("Unknown target %q (want venues, reviews or all)", *target)
	}
}

func runVenues(ctx context.Context, backfillService services.BackfillServiceInterface) {
	report, err := backfillService.BackfillVenues(ctx)
	if err != nil {
		log.Fatalf("Venue backfill failed: %v", err)
	}
	log.Printf("Venue backfill done: %d succeeded, %d failed, %d total",
		report.Success, report.Errors, report.Total)
}

func runReviews(ctx context.Context, backfillService services.BackfillServiceInterface) {
	report, err := backfillService.BackfillReviews(ctx)
	if err != nil {
		log.Fatalf("Review backfill failed: %v", err)
	}
	log.Printf("Review backfill done: %d succeeded, %d failed, %d total",
		report.Success, report.Errors, report.Total)
}
