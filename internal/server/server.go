// Package server exposes the budget master-data API over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelolahq/anggaran/internal/audit"
	"github.com/kelolahq/anggaran/internal/budget"
	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	"github.com/kelolahq/anggaran/internal/categorybudget"
	categorybudgetdomain "github.com/kelolahq/anggaran/internal/categorybudget/domain"
	"github.com/kelolahq/anggaran/internal/config"
	"github.com/kelolahq/anggaran/internal/counter"
	"github.com/kelolahq/anggaran/internal/duplicate"
	"github.com/kelolahq/anggaran/internal/masterdata"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
	obsmiddleware "github.com/kelolahq/anggaran/internal/observability/logger"
	obsmetrics "github.com/kelolahq/anggaran/internal/observability/metrics"
	obstracing "github.com/kelolahq/anggaran/internal/observability/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	audit.Module,
	duplicate.Module,
	counter.Module,
	masterdata.Module,
	budget.Module,
	categorybudget.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(log))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine            *gin.Engine
	budgetSvc         budgetdomain.Service
	categoryBudgetSvc categorybudgetdomain.Service
	masterSvc         masterdomain.Service
}

func NewServer(
	engine *gin.Engine,
	budgetSvc budgetdomain.Service,
	categoryBudgetSvc categorybudgetdomain.Service,
	masterSvc masterdomain.Service,
) *Server {
	s := &Server{
		engine:            engine,
		budgetSvc:         budgetSvc,
		categoryBudgetSvc: categoryBudgetSvc,
		masterSvc:         masterSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/v1")

	budgets := v1.Group("/budgets")
	budgets.POST("", s.CreateBudget)
	budgets.GET("", s.ListBudgets)
	budgets.GET("/:unique_id", s.GetBudget)
	budgets.PUT("/:unique_id", s.UpdateBudget)
	budgets.DELETE("/:unique_id", s.DeleteBudget)

	categories := v1.Group("/category-budgets")
	categories.POST("", s.CreateCategoryBudget)
	categories.GET("", s.ListCategoryBudgets)
	categories.GET("/:unique_id", s.GetCategoryBudget)
	categories.PUT("/:unique_id", s.UpdateCategoryBudget)
	categories.DELETE("/:unique_id", s.DeleteCategoryBudget)

	companies := v1.Group("/companies")
	companies.POST("", s.CreateCompany)
	companies.PUT("/:unique_id", s.UpdateCompany)

	departments := v1.Group("/departments")
	departments.POST("", s.CreateDepartment)
	departments.PUT("/:unique_id", s.UpdateDepartment)

	master := v1.Group("/master")
	master.GET("/:kind", s.ListMasters)
	master.GET("/:kind/:id", s.GetMaster)
}
