package routes

import (
	"lista_presentes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGifts = "/gifts"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func addGiftRoutes(rg *gin.RouterGroup, giftHandler *handlers.GiftHandler) {
	gifts := rg.Group(PathGifts)
	{
		gifts.GET("", giftHandler.ListGifts)
		gifts.POST("", giftHandler.UpsertGift)
		gifts.PUT("", giftHandler.ReplaceCatalog)
		gifts.GET("/:id", giftHandler.GetGift)
		gifts.DELETE("/:id", giftHandler.DeleteGift)

		// Maquina de estados do presente.
		gifts.POST("/:id/reserve", giftHandler.ReserveGift)
		gifts.DELETE("/:id/reservation", giftHandler.RemoveReservation)
		gifts.PATCH("/:id/obtained", giftHandler.SetObtained)
		gifts.PATCH("/:id/visibility", giftHandler.SetVisibility)
		gifts.PATCH("/:id/receive", giftHandler.ConfirmReceived)
	}
}
