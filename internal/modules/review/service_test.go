package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetAll(ctx context.Context) []domain.Review {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Review)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) *domain.Review {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Review)
}

func (m *MockReviewRepository) GetByPropertyID(ctx context.Context, propertyID string) []domain.Review {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Review)
}

func (m *MockReviewRepository) GetByUserID(ctx context.Context, userID string) []domain.Review {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Review)
}

func (m *MockReviewRepository) Add(ctx context.Context, rv *domain.Review) bool {
	args := m.Called(ctx, rv)
	if rv != nil && rv.ID == "" {
		rv.ID = "r-new"
	}
	return args.Bool(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, rv domain.Review) bool {
	args := m.Called(ctx, rv)
	return args.Bool(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

type MockPropertyFinder struct {
	mock.Mock
}

func (m *MockPropertyFinder) GetByID(ctx context.Context, id string) *domain.Property {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Property)
}

type MockRatingUpdater struct {
	mock.Mock
}

func (m *MockRatingUpdater) RecalculateRating(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func TestAddTriggersRecalculation(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("Add", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(true)

	properties := new(MockPropertyFinder)
	properties.On("GetByID", mock.Anything, "p-1").Return(&domain.Property{ID: "p-1"})

	ratings := new(MockRatingUpdater)
	ratings.On("RecalculateRating", mock.Anything, "p-1").Return(nil)

	svc := NewService(reviews, properties, ratings)

	rv, err := svc.Add(context.Background(), domain.Review{
		PropertyID: "p-1",
		UserID:     "g-1",
		Rating:     4,
		Comment:    "nice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rv.ID)
	assert.False(t, rv.Date.IsZero())
	ratings.AssertCalled(t, "RecalculateRating", mock.Anything, "p-1")
}

func TestAddRejectsUnknownProperty(t *testing.T) {
	properties := new(MockPropertyFinder)
	properties.On("GetByID", mock.Anything, "missing").Return(nil)

	reviews := new(MockReviewRepository)
	ratings := new(MockRatingUpdater)
	svc := NewService(reviews, properties, ratings)

	_, err := svc.Add(context.Background(), domain.Review{
		PropertyID: "missing",
		UserID:     "g-1",
		Rating:     4,
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	reviews.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddRejectsOutOfRangeRating(t *testing.T) {
	svc := NewService(new(MockReviewRepository), new(MockPropertyFinder), new(MockRatingUpdater))
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Add(ctx, domain.Review{PropertyID: "p-1", UserID: "g-1", Rating: rating})
		assert.ErrorIs(t, err, ErrValidation, "rating %d", rating)
	}
}

func TestDeleteTriggersRecalculation(t *testing.T) {
	stored := &domain.Review{ID: "r-1", PropertyID: "p-1", UserID: "g-1", Rating: 3, Date: time.Now()}

	reviews := new(MockReviewRepository)
	reviews.On("GetByID", mock.Anything, "r-1").Return(stored)
	reviews.On("Delete", mock.Anything, "r-1").Return(true)

	ratings := new(MockRatingUpdater)
	ratings.On("RecalculateRating", mock.Anything, "p-1").Return(nil)

	svc := NewService(reviews, new(MockPropertyFinder), ratings)

	require.NoError(t, svc.Delete(context.Background(), "r-1"))
	ratings.AssertCalled(t, "RecalculateRating", mock.Anything, "p-1")
}

func TestDeleteUnknownReview(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("GetByID", mock.Anything, "missing").Return(nil)

	svc := NewService(reviews, new(MockPropertyFinder), new(MockRatingUpdater))

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrNotFound)
}

func TestUpdateTriggersRecalculation(t *testing.T) {
	rv := domain.Review{ID: "r-1", PropertyID: "p-1", UserID: "g-1", Rating: 2, Date: time.Now()}

	reviews := new(MockReviewRepository)
	reviews.On("Update", mock.Anything, rv).Return(true)

	ratings := new(MockRatingUpdater)
	ratings.On("RecalculateRating", mock.Anything, "p-1").Return(nil)

	svc := NewService(reviews, new(MockPropertyFinder), ratings)

	require.NoError(t, svc.Update(context.Background(), rv))
	ratings.AssertCalled(t, "RecalculateRating", mock.Anything, "p-1")
}
