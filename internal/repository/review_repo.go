package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/record"
	"github.com/vuyischool/Airbnb-app/internal/storage"
)

type ReviewRepository struct {
	store *storage.Store
}

func NewReviewRepository(store *storage.Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

func (r *ReviewRepository) GetAll(ctx context.Context) []domain.Review {
	lines := r.store.ReadAll(storage.ReviewsFile)
	reviews := make([]domain.Review, 0, len(lines))
	for _, line := range lines {
		if rv, ok := record.DecodeReview(line); ok {
			reviews = append(reviews, rv)
		}
	}
	return reviews
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) *domain.Review {
	for _, rv := range r.GetAll(ctx) {
		if rv.ID == id {
			return &rv
		}
	}
	return nil
}

func (r *ReviewRepository) GetByPropertyID(ctx context.Context, propertyID string) []domain.Review {
	var out []domain.Review
	for _, rv := range r.GetAll(ctx) {
		if rv.PropertyID == propertyID {
			out = append(out, rv)
		}
	}
	return out
}

func (r *ReviewRepository) GetByUserID(ctx context.Context, userID string) []domain.Review {
	var out []domain.Review
	for _, rv := range r.GetAll(ctx) {
		if rv.UserID == userID {
			out = append(out, rv)
		}
	}
	return out
}

func (r *ReviewRepository) Add(ctx context.Context, rv *domain.Review) bool {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	return r.store.Append(storage.ReviewsFile, record.EncodeReview(*rv))
}

func (r *ReviewRepository) Update(ctx context.Context, rv domain.Review) bool {
	return r.store.UpdateByKey(storage.ReviewsFile, rv.ID, record.EncodeReview(rv))
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(storage.ReviewsFile, id)
}
