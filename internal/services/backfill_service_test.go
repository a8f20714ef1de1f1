package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/internal/models/db_models"
	"venuehub/pkg/utils"
)

func missingVenue(name string) db_models.Venue {
	return db_models.Venue{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        name,
		Description: "A venue without an embedding yet",
		Category:    "loft",
		City:        "Austin",
		State:       "TX",
		Status:      db_models.VenueStatusApproved,
	}
}

func newBackfillFixture(venueRepo *fakeVenueRepo, reviewRepo *fakeReviewRepo, client *fakeEmbeddingClient) BackfillServiceInterface {
	return NewBackfillService(venueRepo, reviewRepo, NewEmbeddingService(client), time.Millisecond)
}

func TestBackfillVenues_EmbedsEveryMissingRow(t *testing.T) {
	venueRepo := &fakeVenueRepo{
		missing: []db_models.Venue{missingVenue("The Loft"), missingVenue("Garden Pavilion")},
	}
	client := &fakeEmbeddingClient{dimensions: testDimensions, defaultVec: queryVec()}
	svc := newBackfillFixture(venueRepo, &fakeReviewRepo{}, client)

	report, err := svc.BackfillVenues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, BackfillReport{Success: 2, Errors: 0, Total: 2}, report)
	require.Len(t, venueRepo.savedEmbeddings, 2)
	assert.Equal(t, venueRepo.missing[0].ID, venueRepo.savedEmbeddings[0].ID)
	assert.NotEmpty(t, venueRepo.savedEmbeddings[0].Text)

	// Indexing uses document mode.
	for _, call := range client.calls {
		assert.Equal(t, utils.EmbeddingModeDocument, call.Mode)
	}
}

func TestBackfillVenues_SecondRunWritesNothing(t *testing.T) {
	venueRepo := &fakeVenueRepo{
		missing: []db_models.Venue{missingVenue("The Loft")},
	}
	client := &fakeEmbeddingClient{dimensions: testDimensions, defaultVec: queryVec()}
	svc := newBackfillFixture(venueRepo, &fakeReviewRepo{}, client)

	report, err := svc.BackfillVenues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Success)

	// The first run filled every hole, so the next scan finds none.
	venueRepo.missing = nil

	report, err = svc.BackfillVenues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BackfillReport{}, report)
	assert.Len(t, venueRepo.savedEmbeddings, 1)
}

func TestBackfillVenues_BadRowIsCountedAndSkipped(t *testing.T) {
	venueRepo := &fakeVenueRepo{
		missing: []db_models.Venue{
			missingVenue("The Loft"),
			missingVenue("Cursed Hall"),
			missingVenue("Garden Pavilion"),
		},
	}
	client := &fakeEmbeddingClient{
		dimensions: testDimensions,
		defaultVec: queryVec(),
		failOn:     "Cursed Hall",
	}
	svc := newBackfillFixture(venueRepo, &fakeReviewRepo{}, client)

	report, err := svc.BackfillVenues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, BackfillReport{Success: 2, Errors: 1, Total: 3}, report)
	assert.Len(t, venueRepo.savedEmbeddings, 2)
}

func TestBackfillVenues_SaveFailureCounts(t *testing.T) {
	venueRepo := &fakeVenueRepo{
		missing: []db_models.Venue{missingVenue("The Loft")},
		saveErr: errors.New("connection refused"),
	}
	client := &fakeEmbeddingClient{dimensions: testDimensions, defaultVec: queryVec()}
	svc := newBackfillFixture(venueRepo, &fakeReviewRepo{}, client)

	report, err := svc.BackfillVenues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, BackfillReport{Success: 0, Errors: 1, Total: 1}, report)
}

func TestBackfillVenues_ListFailure(t *testing.T) {
	venueRepo := &fakeVenueRepo{listMissingErr: errors.New("connection refused")}
	svc := newBackfillFixture(venueRepo, &fakeReviewRepo{}, &fakeEmbeddingClient{dimensions: testDimensions})

	_, err := svc.BackfillVenues(context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestBackfillVenues_CancelledContextStopsEarly(t *testing.T) {
	venueRepo := &fakeVenueRepo{
		missing: []db_models.Venue{missingVenue("The Loft"), missingVenue("Garden Pavilion")},
	}
	client := &fakeEmbeddingClient{dimensions: testDimensions, defaultVec: queryVec()}
	svc := newBackfillFixture(venueRepo, &fakeReviewRepo{}, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := svc.BackfillVenues(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Success)
	assert.Empty(t, venueRepo.savedEmbeddings)
}

func TestBackfillReviews_EmbedsAndCounts(t *testing.T) {
	venueID := uuid.New()
	reviewRepo := &fakeReviewRepo{
		missing: []db_models.Review{
			{BaseModel: db_models.BaseModel{ID: uuid.New()}, VenueID: venueID, Comment: "Stunning space, great staff", Rating: 5},
			{BaseModel: db_models.BaseModel{ID: uuid.New()}, VenueID: venueID, Comment: "Parking was rough", Rating: 3},
		},
	}
	client := &fakeEmbeddingClient{dimensions: testDimensions, defaultVec: queryVec()}
	svc := newBackfillFixture(&fakeVenueRepo{}, reviewRepo, client)

	report, err := svc.BackfillReviews(context.Background())
	require.NoError(t, err)

	assert.Equal(t, BackfillReport{Success: 2, Errors: 0, Total: 2}, report)
	assert.Len(t, reviewRepo.savedEmbeddings, 2)
}
