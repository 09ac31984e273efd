package routes

import (
	_ "crm_xpto/docs" // This will be auto-generated
	"crm_xpto/internal/adapter/http/handlers"
	repository2 "crm_xpto/internal/adapter/persistence/repository"
	"crm_xpto/internal/infrastructure/database"
	"crm_xpto/internal/infrastructure/payments"
	"crm_xpto/internal/infrastructure/token"
	"crm_xpto/internal/usecase"
	"crm_xpto/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

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

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	directoryRepo := repository2.NewDirectoryDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentLinkGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	wizardUseCase := usecase.NewProposalWizardUseCase(
		catalogRepo,
		directoryRepo,
		proposalRepo,
		token.NewNumericGenerator(),
		paymentGateway,
	)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo)

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, wizardHandler, proposalHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
