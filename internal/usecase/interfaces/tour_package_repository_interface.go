package interfaces

import (
	"context"

	"tour_billing/internal/domain/entities"
)

// ITourPackageRepository is read-only; packages are maintained by the dashboard.
type ITourPackageRepository interface {
	GetByID(ctx context.Context, id string) (entities.TourPackage, error)
}
