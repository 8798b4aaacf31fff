package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stitchworks-api/controllers"
	"stitchworks-api/database"
	"stitchworks-api/invoice"
	"stitchworks-api/logger"
	"stitchworks-api/notifier"
	"stitchworks-api/repository"
	"stitchworks-api/routes"
	"stitchworks-api/services"
	"stitchworks-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Artwork blob store: S3 when a bucket is configured, local disk otherwise.
	var artworkStore storage.ArtworkStore
	if cfg.ArtworkBucket != "" {
		artworkStore, err = storage.NewS3Store(context.Background(), cfg.ArtworkBucket)
		if err != nil {
			zapLogger.Fatal("Failed to init S3 artwork store", zap.Error(err))
		}
	} else {
		artworkStore = storage.NewLocalStore(cfg.ArtworkDir)
	}

	var mailer notifier.EmailSender
	if cfg.SMTPHost != "" {
		mailer, err = notifier.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		if err != nil {
			zapLogger.Fatal("Failed to init SMTP sender", zap.Error(err))
		}
	} else {
		zapLogger.Warn("SMTP not configured, order confirmation mail disabled")
	}

	// Repositories and DI chain
	orderRepo := repository.NewGormOrderRepository(db)
	deliveryRepo := repository.NewGormDeliveryRepository(db)
	inventoryRepo := repository.NewGormInventoryRepository(db)
	salaryRepo := repository.NewGormSalaryRepository(db)
	employeeRepo := repository.NewGormEmployeeRepository(db)

	deliveryService := services.NewDeliveryService(deliveryRepo, orderRepo, zapLogger)
	orderService := services.NewOrderService(orderRepo, deliveryService, artworkStore, mailer, zapLogger)
	inventoryService := services.NewInventoryService(inventoryRepo, zapLogger)
	financeService := services.NewFinanceService(salaryRepo, orderRepo, inventoryRepo, zapLogger)
	employeeService := services.NewEmployeeService(employeeRepo, zapLogger)

	renderer := invoice.NewRenderer(cfg.CompanyName, cfg.CompanyAddress, cfg.CompanyPhone, cfg.Currency)

	ctrl := routes.Controllers{
		Orders:     controllers.NewOrderController(orderService, renderer),
		Deliveries: controllers.NewDeliveryController(deliveryService),
		Inventory:  controllers.NewInventoryController(inventoryService),
		Salaries:   controllers.NewSalaryController(financeService),
		Employees:  controllers.NewEmployeeController(employeeService),
	}

	// Startup reconciliation: every pending order gets a delivery record.
	if created, err := deliveryService.Reconcile(context.Background()); err != nil {
		zapLogger.Warn("Startup delivery reconciliation failed", zap.Error(err))
	} else if created > 0 {
		zapLogger.Info("Startup reconciliation complete", zap.Int("created", created))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zapLogger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "stitchworks-api"})
	})

	routes.RegisterRoutes(r, ctrl, cfg.AuthSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	zapLogger.Info("StitchWorks API started", zap.String("port", cfg.Port))
	<-quit
	zapLogger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exited cleanly")
}
