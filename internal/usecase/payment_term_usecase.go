package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IPaymentTermUseCase backs the payment-terms settings screen.
//
// Configurations are validated at write time. Bookings keep a snapshot of the
// schedule they were created with, so updates and deactivation never touch
// existing bookings.
type IPaymentTermUseCase interface {
	Create(ctx context.Context, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error)
	Update(ctx context.Context, id string, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error)
	GetByID(ctx context.Context, id string) (entities.PaymentTermConfiguration, error)
	List(ctx context.Context, activeOnly bool) ([]entities.PaymentTermConfiguration, error)
	Deactivate(ctx context.Context, id string) (entities.PaymentTermConfiguration, error)
}

type PaymentTermUseCase struct {
	repo   interfaces.IPaymentTermRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IPaymentTermUseCase = (*PaymentTermUseCase)(nil)

func NewPaymentTermUseCase(repo interfaces.IPaymentTermRepository) *PaymentTermUseCase {
	return &PaymentTermUseCase{repo: repo, logger: zap.L().Named("payment_term"), now: utcNow}
}

func (u *PaymentTermUseCase) Create(ctx context.Context, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error) {
	cfg = normalizeTerm(cfg)
	if err := cfg.Validate(); err != nil {
		return entities.PaymentTermConfiguration{}, err
	}

	maxOrder, err := u.repo.MaxSortOrder(ctx)
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
	}

	now := u.now()
	cfg.ID = uuid.NewString()
	cfg.SortOrder = maxOrder + 1
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	created, err := u.repo.Create(ctx, cfg)
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
	}
	withCorrelation(ctx, u.logger).Info("payment term created",
		zap.String("term_id", created.ID),
		zap.String("payment_type", string(created.PaymentType)),
		zap.Int("sort_order", created.SortOrder),
	)
	return created, nil
}

func (u *PaymentTermUseCase) Update(ctx context.Context, id string, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
	}

	cfg = normalizeTerm(cfg)
	if err := cfg.Validate(); err != nil {
		return entities.PaymentTermConfiguration{}, err
	}

	cfg.ID = existing.ID
	cfg.SortOrder = existing.SortOrder
	cfg.CreatedAt = existing.CreatedAt
	cfg.UpdatedAt = u.now()

	return u.write(ctx, cfg)
}

func (u *PaymentTermUseCase) Deactivate(ctx context.Context, id string) (entities.PaymentTermConfiguration, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
	}
	if !existing.IsActive {
		return existing, nil
	}

	existing.IsActive = false
	existing.UpdatedAt = u.now()
	return u.write(ctx, existing)
}

func (u *PaymentTermUseCase) GetByID(ctx context.Context, id string) (entities.PaymentTermConfiguration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentTermConfiguration{}, fmt.Errorf("%w: payment term id is required", entities.ErrInvalidInput)
	}

	cfg, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
	}
	if cfg.ID == "" {
		return entities.PaymentTermConfiguration{}, fmt.Errorf("%w: payment term %s", entities.ErrNotFound, id)
	}
	return cfg, nil
}

func (u *PaymentTermUseCase) List(ctx context.Context, activeOnly bool) ([]entities.PaymentTermConfiguration, error) {
	terms, err := u.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].SortOrder < terms[j].SortOrder
	})
	return terms, nil
}

func (u *PaymentTermUseCase) write(ctx context.Context, cfg entities.PaymentTermConfiguration) (entities.PaymentTermConfiguration, error) {
	updated, err := u.repo.Update(ctx, cfg)
	if err != nil {
		return entities.PaymentTermConfiguration{}, err
	}
	if updated.ID == "" {
		return entities.PaymentTermConfiguration{}, fmt.Errorf("%w: payment term %s", entities.ErrNotFound, cfg.ID)
	}
	withCorrelation(ctx, u.logger).Info("payment term updated",
		zap.String("term_id", updated.ID),
		zap.Bool("is_active", updated.IsActive),
	)
	return updated, nil
}

func normalizeTerm(cfg entities.PaymentTermConfiguration) entities.PaymentTermConfiguration {
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Description = strings.TrimSpace(cfg.Description)
	cfg.Color = strings.TrimSpace(cfg.Color)
	if cfg.PaymentType == entities.PaymentTypeFullPayment {
		cfg.MonthsRequired = 0
		cfg.MonthlyPercentages = nil
	}
	return cfg
}
