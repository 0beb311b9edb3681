package routes

import (
	"context"
	"fmt"
	"log"

	_ "tour_billing/docs" // generated by swag init
	"tour_billing/internal/adapter/http/handlers"
	"tour_billing/internal/adapter/http/middleware"
	"tour_billing/internal/adapter/persistence/repository"
	"tour_billing/internal/config"
	"tour_billing/internal/infrastructure/database"
	"tour_billing/internal/infrastructure/logger"
	"tour_billing/internal/infrastructure/metrics"
	"tour_billing/internal/infrastructure/payments"
	"tour_billing/internal/infrastructure/storage"
	"tour_billing/internal/usecase"
	"tour_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router *gin.Engine

type appHandlers struct {
	guestBooking    *handlers.GuestBookingHandler
	booking         *handlers.BookingHandler
	paymentTerm     *handlers.PaymentTermHandler
	paymentEvidence *handlers.PaymentEvidenceHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	baseLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = baseLogger.Sync() }()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	h, err := buildHandlers(context.Background(), cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to wire dependencies", zap.Error(err))
	}
	router = setupRouter(baseLogger, h)

	baseLogger.Info("server starting", zap.Int("port", cfg.Port))
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		baseLogger.Fatal("failed to startup the application", zap.Error(err))
	}
}

func setupRouter(baseLogger *zap.Logger, h appHandlers) *gin.Engine {
	r := gin.New()
	setMiddlewares(r, baseLogger)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addTourRoutes(v1, h)
	return r
}

func buildHandlers(ctx context.Context, cfg config.Config, baseLogger *zap.Logger) (appHandlers, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return appHandlers{}, err
	}
	ddb := database.ConnectDynamoDB(awsCfg)

	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	recordRepo := repository.NewPaymentRecordDynamoRepository(ddb)
	termRepo := repository.NewPaymentTermDynamoRepository(ddb)
	evidenceRepo := repository.NewPaymentEvidenceDynamoRepository(ddb)
	packageRepo := repository.NewTourPackageDynamoRepository(ddb)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		baseLogger.Warn("card payment gateway not configured, card checkouts will be refused", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	var evidenceStorage interfaces.IEvidenceStorage
	if cfg.EvidenceBucket != "" || cfg.EvidenceStorageMock {
		evidenceStorage = storage.NewS3EvidenceStorage(storage.ConnectS3(awsCfg, cfg.S3UsePathStyle), cfg.EvidenceBucket, cfg.EvidenceStorageMock)
	} else {
		baseLogger.Warn("evidence bucket not configured, screenshot uploads will be refused")
	}

	m := metrics.Booking()

	return appHandlers{
		guestBooking:    handlers.NewGuestBookingHandler(usecase.NewGuestBookingUseCase(bookingRepo, recordRepo, m)),
		booking:         handlers.NewBookingHandler(usecase.NewBookingUseCase(bookingRepo, recordRepo, termRepo, packageRepo, gateway, m)),
		paymentTerm:     handlers.NewPaymentTermHandler(usecase.NewPaymentTermUseCase(termRepo)),
		paymentEvidence: handlers.NewPaymentEvidenceHandler(usecase.NewPaymentEvidenceUseCase(evidenceRepo, bookingRepo, evidenceStorage, m), cfg.MaxEvidenceBytes),
	}, nil
}

func setMiddlewares(r *gin.Engine, baseLogger *zap.Logger) {
	r.Use(middleware.Correlation())
	r.Use(middleware.RequestLogger(baseLogger.Named("http")))
	r.Use(middleware.Recovery(baseLogger.Named("http")))
}
