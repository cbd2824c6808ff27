package repositories

import (
	"context"
	"errors"
	"tour-itinerary-service/internal/domain"
)

// MemoryCatalogRepository serves a fixed catalog held in memory.
type MemoryCatalogRepository struct {
	catalog *domain.Catalog
}

func NewMemoryCatalogRepository(c *domain.Catalog) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{catalog: c}
}

// NewReferenceCatalogRepository serves the built-in seven-stop catalog.
func NewReferenceCatalogRepository() *MemoryCatalogRepository {
	return NewMemoryCatalogRepository(domain.ReferenceCatalog())
}

func (m *MemoryCatalogRepository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.catalog == nil {
		return nil, errors.New("memory catalog repository: catalog is nil")
	}
	return m.catalog, nil
}
