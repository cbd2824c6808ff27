package ports

import (
	"context"
	"tour-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving the location Catalog from a data source.
type CatalogRepository interface {
	// Load the full, validated catalog.
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
}
