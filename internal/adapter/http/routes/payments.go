package routes

import (
	"crypto/subtle"
	"lista_presentes/internal/adapter/http/handlers"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments     = "/payments"
	PathTransactions = "/transactions"
	PathCron         = "/cron"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreateCheckout)
		payments.POST("/refund", paymentHandler.Refund)
		payments.POST("/webhook", paymentHandler.Webhook)
		payments.POST("/check-all-pending", paymentHandler.CheckAllPending)
	}
}

func addTransactionRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("", transactionHandler.ListTransactions)
		transactions.GET("/latest", transactionHandler.LatestByGift)
		transactions.GET("/by-code", transactionHandler.GetByCode)
		transactions.POST("/check-status", transactionHandler.CheckStatus)
		transactions.POST("/cleanup", transactionHandler.Cleanup)
	}
}

// addCronRoutes exposes the janitor behind a shared secret so an external
// scheduler can hit it over plain GET.
func addCronRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler) {
	cron := rg.Group(PathCron)
	cron.Use(requireCronSecret())
	{
		cron.GET("/cleanup", transactionHandler.Cleanup)
	}
}

func requireCronSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("CRON_SECRET")
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": "CRON_DISABLED", "message": "CRON_SECRET not configured"})
			return
		}
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Invalid cron token"})
			return
		}
		c.Next()
	}
}
