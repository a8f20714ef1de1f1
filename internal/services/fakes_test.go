package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"venuehub/internal/models/db_models"
	"venuehub/internal/repositories"
	"venuehub/pkg/utils"
)

type savedVenueEmbedding struct {
	ID        uuid.UUID
	Embedding pgvector.Vector
	Text      string
}

// fakeVenueRepo is an in-memory VenueRepository for service tests. Error
// fields inject failures per method.
type fakeVenueRepo struct {
	venues     []db_models.Venue
	candidates []db_models.Venue
	vectors    []repositories.VenueVector
	missing    []db_models.Venue

	savedEmbeddings []savedVenueEmbedding
	filterCalls     []repositories.CandidateFilter

	getByIDsErr     error
	filterErr       error
	listMissingErr  error
	saveErr         error
	listEmbeddedErr error
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	f.venues = append(f.venues, *venue)
	return venue.ID, nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue *db_models.Venue) error {
	for i := range f.venues {
		if f.venues[i].ID == venue.ID {
			f.venues[i] = *venue
			return nil
		}
	}
	return fmt.Errorf("venue %s not found", venue.ID)
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.venues {
		if f.venues[i].ID == id {
			f.venues = append(f.venues[:i], f.venues[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	for i := range f.venues {
		if f.venues[i].ID.String() == id {
			venue := f.venues[i]
			return &venue, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Venue, error) {
	if f.getByIDsErr != nil {
		return nil, f.getByIDsErr
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []db_models.Venue
	for i := range f.venues {
		if wanted[f.venues[i].ID] {
			out = append(out, f.venues[i])
		}
	}
	return out, nil
}

func (f *fakeVenueRepo) List(ctx context.Context, page, pageSize int, status string) ([]db_models.Venue, error) {
	return f.venues, nil
}

// FilterCandidates returns the canned candidates when set; otherwise it
// applies the predicates over f.venues like the SQL query would.
func (f *fakeVenueRepo) FilterCandidates(ctx context.Context, filter repositories.CandidateFilter) ([]db_models.Venue, error) {
	f.filterCalls = append(f.filterCalls, filter)
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	if f.candidates != nil {
		return f.candidates, nil
	}

	var out []db_models.Venue
	for _, v := range f.venues {
		if v.Status != db_models.VenueStatusApproved || !v.Availability {
			continue
		}
		if filter.Category != "" && v.Category != filter.Category {
			continue
		}
		if filter.City != "" && v.City != filter.City {
			continue
		}
		if filter.State != "" && v.State != filter.State {
			continue
		}
		if filter.MinCapacity > 0 && v.StandingCapacity < filter.MinCapacity {
			continue
		}
		if filter.MaxPrice > 0 && v.HourlyPrice > filter.MaxPrice {
			continue
		}
		if filter.Featured != nil && v.Featured != *filter.Featured {
			continue
		}
		if filter.MinRating > 0 && v.Rating < filter.MinRating {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVenueRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	for i := range f.venues {
		if f.venues[i].ID == id {
			f.venues[i].Status = status
			return nil
		}
	}
	return nil
}

func (f *fakeVenueRepo) UpdateRatingStats(ctx context.Context, id uuid.UUID, rating float64, reviewsCount int) error {
	for i := range f.venues {
		if f.venues[i].ID == id {
			f.venues[i].Rating = rating
			f.venues[i].ReviewsCount = reviewsCount
			f.venues[i].ClearEmbedding()
			return nil
		}
	}
	return nil
}

func (f *fakeVenueRepo) ListMissingEmbeddings(ctx context.Context) ([]db_models.Venue, error) {
	if f.listMissingErr != nil {
		return nil, f.listMissingErr
	}
	return f.missing, nil
}

func (f *fakeVenueRepo) SaveEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector, text string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedEmbeddings = append(f.savedEmbeddings, savedVenueEmbedding{ID: id, Embedding: embedding, Text: text})
	return nil
}

func (f *fakeVenueRepo) ListEmbedded(ctx context.Context) ([]repositories.VenueVector, error) {
	if f.listEmbeddedErr != nil {
		return nil, f.listEmbeddedErr
	}
	return f.vectors, nil
}

type fakeReviewRepo struct {
	reviews []db_models.Review
	vectors []repositories.ReviewVector
	missing []db_models.Review

	savedEmbeddings []uuid.UUID

	listMissingErr  error
	saveErr         error
	listEmbeddedErr error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	f.reviews = append(f.reviews, *review)
	return review.ID, nil
}

func (f *fakeReviewRepo) ListByVenue(ctx context.Context, venueID uuid.UUID, page, pageSize int) ([]db_models.Review, error) {
	var out []db_models.Review
	for i := range f.reviews {
		if f.reviews[i].VenueID == venueID {
			out = append(out, f.reviews[i])
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) RatingStats(ctx context.Context, venueID uuid.UUID) (float64, int, error) {
	sum, count := 0, 0
	for i := range f.reviews {
		if f.reviews[i].VenueID == venueID {
			sum += f.reviews[i].Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *fakeReviewRepo) ListMissingEmbeddings(ctx context.Context) ([]db_models.Review, error) {
	if f.listMissingErr != nil {
		return nil, f.listMissingErr
	}
	return f.missing, nil
}

func (f *fakeReviewRepo) SaveEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedEmbeddings = append(f.savedEmbeddings, id)
	return nil
}

func (f *fakeReviewRepo) ListEmbedded(ctx context.Context) ([]repositories.ReviewVector, error) {
	if f.listEmbeddedErr != nil {
		return nil, f.listEmbeddedErr
	}
	return f.vectors, nil
}

type embedCall struct {
	Text string
	Mode utils.EmbeddingMode
}

// fakeEmbeddingClient records calls and answers from a canned table, or
// with a fixed vector when the table has no entry.
type fakeEmbeddingClient struct {
	dimensions int
	vectors    map[string][]float32
	defaultVec []float32
	err        error
	// failOn makes Embed fail for any text containing the substring.
	failOn string

	calls []embedCall
}

func (f *fakeEmbeddingClient) Embed(ctx context.Context, text string, mode utils.EmbeddingMode) ([]float32, error) {
	f.calls = append(f.calls, embedCall{Text: text, Mode: mode})
	if f.err != nil {
		return nil, f.err
	}
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, fmt.Errorf("provider rejected text")
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return f.defaultVec, nil
}

func (f *fakeEmbeddingClient) Dimensions() int {
	return f.dimensions
}
