package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	httpH "github.com/yungbote/agroregistry-backend/internal/http/handlers"
	httpMW "github.com/yungbote/agroregistry-backend/internal/http/middleware"
	"github.com/yungbote/agroregistry-backend/internal/observability"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
	"github.com/yungbote/agroregistry-backend/internal/services"
)

type RouterConfig struct {
	Registry       services.Registry
	AuthMiddleware *httpMW.AuthMiddleware
	HealthHandler  *httpH.HealthHandler
	Metrics        *observability.Metrics
	Log            *logger.Logger

	ServiceName string
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	reg := cfg.Registry
	users := httpH.NewCRUDHandler(domainagg.KindUser, reg.Users)

	api := r.Group("/api")
	{
		// Registration (public)
		if reg.Users != nil {
			api.POST("/users", users.Create)
		}
	}

	protected := api.Group("")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if reg.Users != nil {
			g := protected.Group("/users")
			g.GET("", users.List)
			g.GET("/:id", users.Get)
			g.PATCH("/:id", users.Update)
			g.DELETE("/:id", users.Delete)
		}
		if reg.States != nil {
			httpH.NewCRUDHandler(domainagg.KindState, reg.States).Register(protected.Group("/states"))
		}
		if reg.Cities != nil {
			httpH.NewCRUDHandler(domainagg.KindCity, reg.Cities).Register(protected.Group("/cities"))
		}
		if reg.Producers != nil {
			httpH.NewCRUDHandler(domainagg.KindProducer, reg.Producers).Register(protected.Group("/producers"))
		}
		if reg.RuralProperties != nil {
			httpH.NewCRUDHandler(domainagg.KindRuralProperty, reg.RuralProperties).Register(protected.Group("/rural-properties"))
		}
		if reg.Harvests != nil {
			httpH.NewCRUDHandler(domainagg.KindHarvest, reg.Harvests).Register(protected.Group("/harvests"))
		}
		if reg.PlantedCultures != nil {
			httpH.NewCRUDHandler(domainagg.KindPlantedCulture, reg.PlantedCultures).Register(protected.Group("/planted-cultures"))
		}
		if reg.Cultivations != nil {
			httpH.NewCRUDHandler(domainagg.KindCultivation, reg.Cultivations).Register(protected.Group("/cultivations"))
		}

		// Dashboard
		if reg.Dashboard != nil {
			dash := httpH.NewDashboardHandler(reg.Dashboard)
			protected.GET("/dashboards", dash.Report)
			protected.GET("/dashboards/export.xlsx", dash.ExportXLSX)
		}
	}

	return r
}
