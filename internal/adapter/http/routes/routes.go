package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"renova_contracts/internal/adapter/http/handlers"
	"renova_contracts/internal/adapter/http/middleware"
	"renova_contracts/internal/adapter/persistence/repository"
	"renova_contracts/internal/infrastructure/audit"
	"renova_contracts/internal/infrastructure/database"
	"renova_contracts/internal/infrastructure/payments"
	"renova_contracts/internal/infrastructure/services"
	"renova_contracts/internal/usecase"
	"renova_contracts/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires the service together and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	auditSink := audit.NewSink(repository.NewAuditDynamoRepository(ddb))
	contractRepo := repository.NewContractDynamoRepository(ddb, auditSink)

	quoteSvc := services.NewQuoteClient(getenvDefault("QUOTES_SERVICE_URL", "http://quotes:8080"))
	scopeSvc := services.NewScopeOfWorkClient(getenvDefault("SCOPES_SERVICE_URL", "http://scopes:8080"))
	projectSvc := services.NewProjectClient(getenvDefault("PROJECTS_SERVICE_URL", "http://projects:8080"))
	userSvc := services.NewUserClient(getenvDefault("USERS_SERVICE_URL", "http://users:8080"))

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	generationUseCase := usecase.NewContractGenerationUseCase(contractRepo, auditSink, quoteSvc, scopeSvc, projectSvc, userSvc)
	signatureUseCase := usecase.NewSignatureUseCase(contractRepo, auditSink, getenvDefault("SIGNING_LINK_BASE", "https://sign.renova.local"))
	milestoneUseCase := usecase.NewMilestonePaymentUseCase(contractRepo, auditSink, paymentGateway)
	variationUseCase := usecase.NewVariationUseCase(contractRepo, auditSink)
	lifecycleUseCase := usecase.NewContractLifecycleUseCase(contractRepo, auditSink, projectSvc)

	contractHandler := handlers.NewContractHandler(generationUseCase, lifecycleUseCase)
	workflowHandler := handlers.NewWorkflowHandler(signatureUseCase, milestoneUseCase, variationUseCase)

	startSignatureSweep(signatureUseCase)

	v1 := router.Group("/v1")
	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	addContractRoutes(v1, contractHandler, workflowHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// startSignatureSweep runs the periodic expiry sweep that moves overdue
// pending signature requests to expired.
func startSignatureSweep(signatures usecase.ISignatureUseCase) {
	interval := time.Hour
	if v, err := time.ParseDuration(os.Getenv("SIGNATURE_SWEEP_INTERVAL")); err == nil && v > 0 {
		interval = v
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), interval/2)
			if _, err := signatures.ExpirePendingSignatures(ctx); err != nil {
				log.Printf("[signature][sweep] failed err=%v", err)
			}
			cancel()
		}
	}()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
