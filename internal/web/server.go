// Package web gin server
package web

import (
	"net/http"

	errors "github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/keyword-extractor/internal/keywords"
	"github.com/Laisky/keyword-extractor/library/log"
)

// RunServer serves the keyword API on addr until the listener fails.
func RunServer(addr string, svc *keywords.Service, settings Settings) error {
	if !gconfig.Shared.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	server := newEngine(log.Logger.Named("gin"))
	if err := gmw.EnableMetric(server); err != nil {
		return errors.Wrap(err, "enable metric server")
	}
	if err := registerRoutes(server, svc, settings); err != nil {
		return errors.Wrap(err, "register routes")
	}

	log.Logger.Info("listening on http",
		zap.String("addr", addr),
		zap.String("extract_path", settings.ExtractPath))
	return errors.Wrap(server.Run(addr), "httpServer exit")
}

// newEngine builds a gin engine with the middlewares every route shares.
// Routes must be registered after any further middleware is added.
func newEngine(logger logSDK.Logger) *gin.Engine {
	server := gin.New()
	server.Use(
		gin.Recovery(),
		gmw.NewLoggerMiddleware(
			gmw.WithLogger(logger),
		),
		allowCORS,
	)

	return server
}

func registerRoutes(server *gin.Engine, svc *keywords.Service, settings Settings) error {
	if svc == nil {
		return errors.New("keywords service is required")
	}

	server.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})
	server.GET("/ready", newReadyHandler(svc.Provider()))
	server.Any(settings.ExtractPath, NewExtractController(svc).Extract)

	return nil
}

// newReadyHandler reports 200 once the tokenizer has been built.
func newReadyHandler(provider *keywords.Provider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		state := provider.State()
		if state != keywords.StateReady {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": string(state)})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"status": string(state)})
	}
}
