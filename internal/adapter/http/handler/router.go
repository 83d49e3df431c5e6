package handler

import (
	"context"

	"solgate/internal/adapter/http/middleware"
	"solgate/internal/core/ports"
	"solgate/pkg/apperror"
	"solgate/pkg/response"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// UpdateDispatcher receives Telegram updates from the webhook ingress.
// Implemented by the telegram.Router.
type UpdateDispatcher interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Dispatcher     UpdateDispatcher // nil = webhook ingress disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Telegram webhook ingress (alternative to long polling)
	if deps.Dispatcher != nil {
		r.POST("/webhook", Webhook(deps.Dispatcher, deps.Logger))
	}

	return r
}

// Webhook accepts a Telegram update, dispatches it asynchronously and
// acknowledges immediately. Telegram retries on non-2xx, so a malformed
// body is the only rejection.
func Webhook(dispatcher UpdateDispatcher, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			log.Warn().Err(err).Msg("malformed webhook update")
			response.Error(c, apperror.ErrMalformedUpdate(err))
			return
		}

		// Handled off the request goroutine; updates are independent and
		// coordinate only through the wallet ledger.
		go dispatcher.HandleUpdate(context.WithoutCancel(c.Request.Context()), update)

		response.OK(c, gin.H{"accepted": true})
	}
}
