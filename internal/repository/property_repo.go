package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/record"
	"github.com/vuyischool/Airbnb-app/internal/storage"
)

type PropertyRepository struct {
	store *storage.Store
}

func NewPropertyRepository(store *storage.Store) *PropertyRepository {
	return &PropertyRepository{store: store}
}

func (r *PropertyRepository) GetAll(ctx context.Context) []domain.Property {
	lines := r.store.ReadAll(storage.ListingsFile)
	properties := make([]domain.Property, 0, len(lines))
	for _, line := range lines {
		if p, ok := record.DecodeProperty(line); ok {
			properties = append(properties, p)
		}
	}
	return properties
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) *domain.Property {
	for _, p := range r.GetAll(ctx) {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

func (r *PropertyRepository) GetByOwnerID(ctx context.Context, ownerID string) []domain.Property {
	var owned []domain.Property
	for _, p := range r.GetAll(ctx) {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned
}

func (r *PropertyRepository) Add(ctx context.Context, p *domain.Property) bool {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.store.Append(storage.ListingsFile, record.EncodeProperty(*p))
}

func (r *PropertyRepository) Update(ctx context.Context, p domain.Property) bool {
	return r.store.UpdateByKey(storage.ListingsFile, p.ID, record.EncodeProperty(p))
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(storage.ListingsFile, id)
}
