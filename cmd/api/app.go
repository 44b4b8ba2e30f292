package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/docs"
	"github.com/hugohenrick/bizit/internal/adapter/api/controller"
	"github.com/hugohenrick/bizit/internal/adapter/api/route"
	"github.com/hugohenrick/bizit/internal/adapter/repository"
	"github.com/hugohenrick/bizit/internal/adapter/repository/memory"
	"github.com/hugohenrick/bizit/internal/config"
	"github.com/hugohenrick/bizit/internal/domain/loss"
	"github.com/hugohenrick/bizit/internal/domain/organization"
	"github.com/hugohenrick/bizit/internal/domain/sale"
	"github.com/hugohenrick/bizit/internal/domain/stock"
	"github.com/hugohenrick/bizit/internal/domain/supplier"
	"github.com/hugohenrick/bizit/internal/infrastructure/database"
	"github.com/hugohenrick/bizit/internal/scheduler"
	"github.com/hugohenrick/bizit/internal/service/ledger"
	"github.com/hugohenrick/bizit/internal/service/losses"
	"github.com/hugohenrick/bizit/internal/service/reports"
	"github.com/hugohenrick/bizit/internal/service/sales"
	"github.com/hugohenrick/bizit/internal/service/shipments"
	"github.com/hugohenrick/bizit/pkg/logger"
	"github.com/hugohenrick/bizit/pkg/tenant"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// stores agrupa os repositórios de um backend de persistência
type stores struct {
	ledger        ledger.Store
	items         stock.Repository
	sales         sale.Repository
	losses        loss.Repository
	suppliers     supplier.Repository
	organizations organization.Repository
}

// App representa a aplicação e suas dependências
type App struct {
	cfg       *config.Config
	log       *zap.Logger
	router    *gin.Engine
	db        *database.PostgresDB
	scheduler *scheduler.Scheduler
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	st, err := app.openStores(ctx)
	if err != nil {
		return nil, err
	}

	l := ledger.NewLedger(st.ledger, st.items, cfg.Ledger.MaxRetries, logger.Named(log, "ledger"))
	reportService := reports.NewService(st.sales, st.losses, st.items)
	shipmentService := shipments.NewService(l, st.suppliers, st.items, logger.Named(log, "shipments"))
	saleService := sales.NewService(l, st.sales, logger.Named(log, "sales"))
	lossService := losses.NewService(l, st.losses, logger.Named(log, "losses"))

	httpLog := logger.Named(log, "http")
	ctrls := route.Controllers{
		Organization: controller.NewOrganizationController(st.organizations, httpLog),
		Stock:        controller.NewStockController(l, reportService, httpLog),
		Sale:         controller.NewSaleController(saleService, httpLog),
		Loss:         controller.NewLossController(lossService, httpLog),
		Analytics:    controller.NewAnalyticsController(reportService, httpLog),
		Supplier:     controller.NewSupplierController(shipmentService, httpLog),
		Shipment:     controller.NewShipmentController(shipmentService, httpLog),
	}

	app.router = app.newRouter()
	app.setupRoutes(ctrls, repository.NewOrganizationValidator(st.organizations))
	app.scheduler = scheduler.NewScheduler(cfg.Scheduler.LateShipmentCron, shipmentService, logger.Named(log, "scheduler"))

	return app, nil
}

// openStores abre o backend de persistência configurado
func (a *App) openStores(ctx context.Context) (*stores, error) {
	switch a.cfg.Database.Driver {
	case config.DriverMemory:
		a.log.Warn("usando armazenamento em memória; os dados serão perdidos ao encerrar")
		db := memory.NewDB()
		return &stores{
			ledger:        memory.NewStore(db),
			items:         memory.NewStockRepository(db),
			sales:         memory.NewSaleRepository(db),
			losses:        memory.NewLossRepository(db),
			suppliers:     memory.NewSupplierRepository(db),
			organizations: memory.NewOrganizationRepository(db),
		}, nil
	default:
		dbLog := logger.Named(a.log, "database")
		if err := database.RunMigrations(a.cfg.Database.ConnectionString(), dbLog); err != nil {
			return nil, fmt.Errorf("erro ao executar migrações: %w", err)
		}
		db, err := database.NewPostgresDB(ctx, a.cfg.Database, dbLog)
		if err != nil {
			return nil, err
		}
		a.db = db
		pool := db.Pool()
		return &stores{
			ledger:        repository.NewLedgerStore(db),
			items:         repository.NewStockRepository(pool),
			sales:         repository.NewSaleRepository(pool),
			losses:        repository.NewLossRepository(pool),
			suppliers:     repository.NewSupplierRepository(pool),
			organizations: repository.NewOrganizationRepository(pool),
		}, nil
	}
}

func (a *App) newRouter() *gin.Engine {
	gin.SetMode(a.cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(a.log.Named("router")))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "user-id", "user-role", "user-department", "org-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	return r
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(ctrls route.Controllers, validator tenant.OrganizationValidator) {
	basePath := a.cfg.Server.BasePath
	docs.SwaggerInfo.BasePath = basePath

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(basePath)
	api.GET("/health", a.health)

	route.RegisterRoutes(api, ctrls, validator)
}

func (a *App) health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if a.db != nil {
		if err := a.db.Pool().Ping(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, gin.H{
		"status":  status,
		"driver":  a.cfg.Database.Driver,
		"version": docs.SwaggerInfo.Version,
	})
}

// Run inicia o agendador e o servidor HTTP e bloqueia até o contexto ser cancelado
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduler.Start(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      a.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info("servidor iniciado", zap.String("port", a.cfg.Server.Port), zap.String("base_path", a.cfg.Server.BasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("erro no servidor HTTP: %w", err)
		}
	case <-ctx.Done():
		a.log.Info("sinal de encerramento recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro ao encerrar servidor: %w", err)
	}
	return nil
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("requisição concluída",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("org_id", c.GetString("org_id")))
	}
}
