package routes

import (
	"log"
	_ "lista_presentes/docs" // This will be auto-generated
	"lista_presentes/internal/adapter/http/handlers"
	repository2 "lista_presentes/internal/adapter/persistence/repository"
	"lista_presentes/internal/infrastructure/database"
	"lista_presentes/internal/infrastructure/payments"
	"lista_presentes/internal/usecase"
	"lista_presentes/internal/usecase/interfaces"
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

	giftRepo := repository2.NewGiftDynamoRepository(ddb)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	pbGateway, err := payments.NewPagBankGateway(os.Getenv("PAGSEGURO_TOKEN"))
	if err != nil {
		log.Printf("PagBank gateway not configured: %v", err)
	} else {
		paymentGateway = pbGateway
	}

	giftUseCase := usecase.NewGiftUseCase(giftRepo)
	paymentUseCase := usecase.NewPaymentUseCase(giftRepo, transactionRepo, paymentGateway)
	reconcileUseCase := usecase.NewReconcileUseCase(giftRepo, transactionRepo, paymentGateway)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo)

	giftHandler := handlers.NewGiftHandler(giftUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, reconcileUseCase)
	transactionHandler := handlers.NewTransactionHandler(transactionUseCase, reconcileUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGiftRoutes(v1, giftHandler)
	addPaymentRoutes(v1, paymentHandler)
	addTransactionRoutes(v1, transactionHandler)
	addCronRoutes(v1, transactionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
