package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "oficina_xpto/docs" // This will be auto-generated
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"
	repository2 "oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/directory"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewJobOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentRecordDynamoRepository(ddb)
	approvalRepo := repository2.NewApprovalRequestDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	actorDirectory := directory.NewCachedDirectory(
		directory.NewStaticDirectory(os.Getenv("ACTOR_DIRECTORY")),
		10*time.Minute,
		1024,
	)

	jobOrderUseCase := usecase.NewJobOrderUseCase(orderRepo, actorDirectory)
	billingUseCase := usecase.NewBillingUseCase(orderRepo, paymentRepo, paymentGateway)
	approvalUseCase := usecase.NewApprovalUseCase(approvalRepo, orderRepo)
	exitPermitUseCase := usecase.NewExitPermitUseCase(orderRepo)

	jobOrderHandler := handlers.NewJobOrderHandler(jobOrderUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase)
	approvalHandler := handlers.NewApprovalHandler(approvalUseCase)
	exitPermitHandler := handlers.NewExitPermitHandler(exitPermitUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth())

	addJobOrderRoutes(protected, jobOrderHandler)
	addBillingRoutes(protected, billingHandler)
	addApprovalRoutes(protected, approvalHandler)
	addExitPermitRoutes(protected, exitPermitHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
}
