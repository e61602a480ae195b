package property

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/modules/review"
	"github.com/vuyischool/Airbnb-app/internal/repository"
	"github.com/vuyischool/Airbnb-app/internal/storage"
)

// The property tests run against real flat-file repositories in a temp
// directory, since rating recomputation and the delete cascade are about
// what ends up persisted.
type fixture struct {
	properties *repository.PropertyRepository
	reviews    *repository.ReviewRepository
	bookings   *repository.BookingRepository
	svc        *Service
	reviewSvc  *review.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewStore(t.TempDir(), logrus.New())

	f := &fixture{
		properties: repository.NewPropertyRepository(store),
		reviews:    repository.NewReviewRepository(store),
		bookings:   repository.NewBookingRepository(store),
	}
	f.svc = NewService(f.properties, f.reviews, f.bookings)
	f.reviewSvc = review.NewService(f.reviews, f.properties, f.svc)
	return f
}

func (f *fixture) addProperty(t *testing.T, ctx context.Context, title, location string, price float64) *domain.Property {
	t.Helper()
	p, err := f.svc.Add(ctx, domain.Property{
		Title:    title,
		Location: location,
		Price:    price,
		OwnerID:  "h-1",
	})
	require.NoError(t, err)
	return p
}

func TestAddDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p := f.addProperty(t, ctx, "Loft", "Belgrade", 85)
	assert.NotEmpty(t, p.ID)
	assert.Zero(t, p.AverageRating)
	assert.Equal(t, domain.AvailabilityAll, p.AvailableDates)
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Add(ctx, domain.Property{Title: "Loft", Location: "Belgrade", Price: 0, OwnerID: "h-1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Add(ctx, domain.Property{Location: "Belgrade", Price: 50, OwnerID: "h-1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRatingRecomputation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.addProperty(t, ctx, "Loft", "Belgrade", 85)

	var midReview *domain.Review
	for _, rating := range []int{5, 3, 4} {
		rv, err := f.reviewSvc.Add(ctx, domain.Review{
			PropertyID: p.ID,
			UserID:     "g-1",
			Rating:     rating,
			Comment:    "ok",
			Date:       time.Now(),
		})
		require.NoError(t, err)
		if rating == 3 {
			midReview = rv
		}
	}
	assert.Equal(t, 4.0, f.svc.GetByID(ctx, p.ID).AverageRating)

	require.NoError(t, f.reviewSvc.Delete(ctx, midReview.ID))
	assert.Equal(t, 4.5, f.svc.GetByID(ctx, p.ID).AverageRating)

	for _, rv := range f.reviews.GetByPropertyID(ctx, p.ID) {
		require.NoError(t, f.reviewSvc.Delete(ctx, rv.ID))
	}
	assert.Equal(t, 0.0, f.svc.GetByID(ctx, p.ID).AverageRating)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.addProperty(t, ctx, "Loft", "Belgrade", 85)
	other := f.addProperty(t, ctx, "Cottage", "Novi Sad", 60)

	for i := 0; i < 2; i++ {
		_, err := f.reviewSvc.Add(ctx, domain.Review{PropertyID: p.ID, UserID: "g-1", Rating: 4})
		require.NoError(t, err)
	}
	b := domain.Booking{PropertyID: p.ID, GuestID: "g-1", Status: domain.BookingConfirmed}
	require.True(t, f.bookings.Add(ctx, &b))
	keep := domain.Booking{PropertyID: other.ID, GuestID: "g-1", Status: domain.BookingConfirmed}
	require.True(t, f.bookings.Add(ctx, &keep))

	require.NoError(t, f.svc.Delete(ctx, p.ID))

	assert.Nil(t, f.svc.GetByID(ctx, p.ID))
	assert.Empty(t, f.reviews.GetByPropertyID(ctx, p.ID))
	assert.Empty(t, f.bookings.GetByPropertyID(ctx, p.ID))

	// Unrelated records survive.
	assert.NotNil(t, f.svc.GetByID(ctx, other.ID))
	assert.Len(t, f.bookings.GetByPropertyID(ctx, other.ID), 1)
}

func TestDeleteUnknownProperty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.ErrorIs(t, f.svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	loft := f.addProperty(t, ctx, "Loft", "Belgrade", 85)
	f.addProperty(t, ctx, "Cottage", "Novi Sad", 60)
	cheap := f.addProperty(t, ctx, "Room", "New Belgrade", 30)

	_, err := f.reviewSvc.Add(ctx, domain.Review{PropertyID: loft.ID, UserID: "g-1", Rating: 5})
	require.NoError(t, err)

	strptr := func(s string) *string { return &s }
	f64ptr := func(v float64) *float64 { return &v }

	// Location substring, case-insensitive.
	got := f.svc.Search(ctx, SearchFilter{Location: strptr("belgrade")})
	assert.Len(t, got, 2)

	// Inclusive max price.
	got = f.svc.Search(ctx, SearchFilter{MaxPrice: f64ptr(60)})
	assert.Len(t, got, 2)

	// Inclusive min rating.
	got = f.svc.Search(ctx, SearchFilter{MinRating: f64ptr(5)})
	require.Len(t, got, 1)
	assert.Equal(t, loft.ID, got[0].ID)

	// Conjunction of predicates.
	got = f.svc.Search(ctx, SearchFilter{Location: strptr("belgrade"), MaxPrice: f64ptr(40)})
	require.Len(t, got, 1)
	assert.Equal(t, cheap.ID, got[0].ID)

	// Empty filter matches everything.
	assert.Len(t, f.svc.Search(ctx, SearchFilter{}), 3)
}

func TestUpdateRewritesRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.addProperty(t, ctx, "Loft", "Belgrade", 85)

	p.Price = 95
	p.Title = "Riverside Loft"
	require.NoError(t, f.svc.Update(ctx, *p))

	got := f.svc.GetByID(ctx, p.ID)
	assert.Equal(t, 95.0, got.Price)
	assert.Equal(t, "Riverside Loft", got.Title)

	assert.ErrorIs(t, f.svc.Update(ctx, domain.Property{ID: "missing", Title: "x", Location: "y", Price: 1, OwnerID: "h"}), ErrNotFound)
}
