package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"travel-vlogs/pkg/config"
	"travel-vlogs/pkg/logger"
	"travel-vlogs/pkg/services"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires the gallery pages, the JSON API and the metrics endpoint
func NewRouter(svc *services.Service, cfg *config.Config) *gin.Engine {
	h := NewHandler(svc, cfg)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", h.Index)
	router.GET("/vlogs/:id", h.VideoPage)
	router.GET("/healthz", h.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/vlogs", h.GetView)
		api.POST("/vlogs", h.Upload)
		api.GET("/vlogs/:id", h.GetVlog)
		api.POST("/vlogs/:id/open", h.OpenVideo)

		api.POST("/filter", h.SetFilter)
		api.POST("/sort", h.SetSort)
		api.POST("/search", h.Search)

		api.GET("/modal", h.GetModal)
		api.POST("/modal/close", h.CloseModal)

		api.GET("/categories", h.GetCategories)
		api.GET("/destinations", h.GetDestinations)
		api.GET("/destinations/:key", h.GetDestination)
		api.POST("/planner", h.PlanTrip)
		api.GET("/notifications", h.GetNotifications)
		api.GET("/export", h.Export)
		api.POST("/chat", h.Chat)
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.GetLogger().
			WithField("method", c.Request.Method).
			WithField("path", c.Request.URL.Path).
			WithField("status", c.Writer.Status()).
			WithField("latency", time.Since(start)).
			Debug("Request served")
	}
}

// Run serves the router until ctx is cancelled, then shuts the server down
func Run(ctx context.Context, cfg *config.Config, svc *services.Service) error {
	httpServer := &http.Server{
		Addr:    cfg.ServerAddress(),
		Handler: NewRouter(svc, cfg),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg.PrintServerStartMessage()
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.GetLogger().Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
