package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tour_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid provider payment id")
)

const mockStatus = "approved"

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the card payment gateway. In mock mode no SDK
// client is created and every lookup reports an approved payment.
func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	log := zap.L().Named("mercadopago")
	if mockMode {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: log}, nil
	}

	if accessToken == "" {
		log.Warn("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: log}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.ProviderPayment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return interfaces.ProviderPayment{}, ErrInvalidProviderPaymentID
	}

	if g != nil && g.mockMode {
		g.logger.Debug("mock get", zap.String("provider_payment_id", providerPaymentID))
		raw, err := json.Marshal(map[string]any{
			"id":            providerPaymentID,
			"status":        mockStatus,
			"status_detail": "accredited",
		})
		if err != nil {
			return interfaces.ProviderPayment{}, err
		}
		return interfaces.ProviderPayment{ID: providerPaymentID, Status: mockStatus, Raw: raw}, nil
	}

	if g == nil || g.client == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.logger.Error("sdk get failed", zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProviderPayment{}, err
	}
	g.logger.Info("payment fetched",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)

	return interfaces.ProviderPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		TransactionAmount: resp.TransactionAmount,
		CurrencyID:        resp.CurrencyID,
		Raw:               raw,
	}, nil
}

