package routes

import (
	_ "clinica_finanzas/docs" // This will be auto-generated
	"clinica_finanzas/internal/adapter/http/handlers"
	"clinica_finanzas/internal/adapter/persistence/repository"
	"clinica_finanzas/internal/infrastructure/config"
	"clinica_finanzas/internal/infrastructure/database"
	"clinica_finanzas/internal/infrastructure/documents"
	"clinica_finanzas/internal/infrastructure/seed"
	"clinica_finanzas/internal/usecase"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// seedTimeout bounds the startup snapshot fetch on top of its simulated latency.
const seedTimeout = 30 * time.Second

// Run will start the server
func Run() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SeedLatency+seedTimeout)
	defer cancel()
	if err := setupRouter(ctx, router, cfg); err != nil {
		log.Fatalf("Failed to initialize the application: %v", err)
	}

	log.Printf("[routes] listening port=%d backend=%s", cfg.Port, cfg.StorageBackend)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func setupRouter(ctx context.Context, r *gin.Engine, cfg config.Config) error {
	setMiddlewares(r)

	// Swagger documentation endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addEntityRoutes(v1, app.entityHandler)
	addFinanceRoutes(v1, app)
	return nil
}

type application struct {
	entityHandler        *handlers.EntityHandler
	paymentHandler       *handlers.PaymentHandler
	paymentMethodHandler *handlers.PaymentMethodHandler
	paymentTypeHandler   *handlers.PaymentTypeHandler
	invoiceHandler       *handlers.InvoiceHandler
}

type stores struct {
	payments interfaces.IPaymentRepository
	methods  interfaces.IPaymentMethodRepository
	types    interfaces.IPaymentTypeRepository
}

func newStores(ctx context.Context, cfg config.Config) stores {
	if cfg.StorageBackend == config.BackendDynamoDB {
		ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		return stores{
			payments: repository.NewPaymentDynamoRepository(ddb),
			methods:  repository.NewPaymentMethodDynamoRepository(ddb),
			types:    repository.NewPaymentTypeDynamoRepository(ddb),
		}
	}
	return stores{
		payments: repository.NewPaymentMemoryRepository(),
		methods:  repository.NewPaymentMethodMemoryRepository(),
		types:    repository.NewPaymentTypeMemoryRepository(),
	}
}

// newApplication seeds the session from the snapshot and wires the handlers.
func newApplication(ctx context.Context, cfg config.Config) (*application, error) {
	s := newStores(ctx, cfg)
	registry := usecase.NewEntityRegistry()

	var loader interfaces.ISnapshotLoader = seed.NewJSONSnapshotLoader(cfg.SeedFile, cfg.SeedLatency)
	session := usecase.NewSessionUseCase(registry, s.methods, s.types, s.payments)
	if err := session.InitializeFrom(ctx, loader); err != nil {
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	ledgerLock := usecase.NewLedgerLock()
	paymentUseCase := usecase.NewPaymentUseCase(s.payments, s.types, s.methods, registry, ledgerLock)
	paymentMethodUseCase := usecase.NewPaymentMethodUseCase(s.methods, s.payments, ledgerLock)
	paymentTypeUseCase := usecase.NewPaymentTypeUseCase(s.types, s.payments, ledgerLock)
	ledgerViewUseCase := usecase.NewLedgerViewUseCase(s.payments, s.types, s.methods, registry, documents.NewXLSXLedgerExporter())
	invoiceUseCase := usecase.NewInvoiceUseCase(s.payments, s.types, registry, documents.NewPDFInvoiceExporter(), cfg.Issuer)

	return &application{
		entityHandler:        handlers.NewEntityHandler(registry),
		paymentHandler:       handlers.NewPaymentHandler(paymentUseCase, ledgerViewUseCase),
		paymentMethodHandler: handlers.NewPaymentMethodHandler(paymentMethodUseCase),
		paymentTypeHandler:   handlers.NewPaymentTypeHandler(paymentTypeUseCase),
		invoiceHandler:       handlers.NewInvoiceHandler(invoiceUseCase),
	}, nil
}

func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
