package routes

import (
	"log"
	"strconv"

	_ "consultoria_xpto/docs" // This will be auto-generated
	"consultoria_xpto/internal/adapter/http/handlers"
	"consultoria_xpto/internal/adapter/persistence/repository"
	"consultoria_xpto/internal/infrastructure/database"
	"consultoria_xpto/internal/usecase"

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

	proposalRepo := repository.NewProposalDynamoRepository(ddb)
	itemRepo := repository.NewProposalItemDynamoRepository(ddb)
	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	paramsRepo := repository.NewPricingParametersDynamoRepository(ddb)
	riskRepo := repository.NewRiskAssessmentDynamoRepository(ddb)

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, itemRepo, clientRepo, serviceRepo, paramsRepo)
	pricingUseCase := usecase.NewPricingUseCase(paramsRepo, serviceRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	paramsUseCase := usecase.NewPricingParametersUseCase(paramsRepo)
	riskUseCase := usecase.NewRiskAssessmentUseCase(riskRepo, clientRepo)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	paramsHandler := handlers.NewPricingParametersHandler(paramsUseCase)
	riskHandler := handlers.NewRiskAssessmentHandler(riskUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, proposalHandler)
	addPricingRoutes(v1, pricingHandler, paramsHandler)
	addCatalogRoutes(v1, serviceHandler, clientHandler)
	addRiskAssessmentRoutes(v1, riskHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
