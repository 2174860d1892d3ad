package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.WebhookHandler) {
	a.Router.GET("/health", h.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/payments", h.ListPayments)

	webhook := a.Router.Group("/webhook")
	webhook.GET("", h.Health)
	webhook.POST("", h.ReceiveWebhook)
}
