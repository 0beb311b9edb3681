package interfaces

import (
	"context"

	"tour_billing/internal/domain/entities"
)

// IPaymentTermRepository abstracts DynamoDB persistence for payment terms.
//
// Reads return a zero-value configuration (empty ID) when nothing is stored.
type IPaymentTermRepository interface {
	Create(ctx context.Context, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error)
	Update(ctx context.Context, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error)
	GetByID(ctx context.Context, id string) (entities.PaymentTermConfiguration, error)
	List(ctx context.Context, activeOnly bool) ([]entities.PaymentTermConfiguration, error)
	MaxSortOrder(ctx context.Context) (int, error)
}
