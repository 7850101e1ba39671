package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/BERSERKRobot/chess-website-v2/internal/api/http"
	"github.com/BERSERKRobot/chess-website-v2/internal/api/http/handlers"
	"github.com/BERSERKRobot/chess-website-v2/internal/config"
	"github.com/BERSERKRobot/chess-website-v2/internal/events"
	"github.com/BERSERKRobot/chess-website-v2/internal/mailer"
	"github.com/BERSERKRobot/chess-website-v2/internal/observability"
	"github.com/BERSERKRobot/chess-website-v2/internal/payments"
	"github.com/BERSERKRobot/chess-website-v2/internal/persistence"
	"github.com/BERSERKRobot/chess-website-v2/internal/repository"
	"github.com/BERSERKRobot/chess-website-v2/internal/service"
	"github.com/BERSERKRobot/chess-website-v2/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	gateway := payments.NewGateway(cfg.Stripe)
	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not provided; payment calls will fail")
	}
	mail := mailer.NewMailer(cfg.Email)
	if cfg.Email.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY not provided; email delivery will fail")
	}

	pool := pg.PoolHandle()
	sessionRepo := repository.NewCheckoutSessionRepository(redis.Client, cfg.Checkout.SessionTTL())
	orderRepo := repository.NewOrderRepository(pool)
	contactRepo := repository.NewContactMessageRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	checkoutService := service.NewCheckoutService(service.CheckoutDependencies{
		SessionRepo: sessionRepo,
		OrderRepo:   orderRepo,
		Gateway:     gateway,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	contactService := service.NewContactService(service.ContactDependencies{
		Mailer:      mail,
		ArchiveRepo: contactRepo,
		Dispatcher:  dispatcher,
		Config:      cfg.Email,
		Logger:      logger,
	})
	notificationService := service.NewNotificationService(dispatcher, mail, logger, cfg.Email)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	plansHandler := handlers.NewPlansHandler(cfg.Stripe)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	contactHandler := handlers.NewContactHandler(contactService)
	ordersHandler := handlers.NewOrdersHandler(checkoutService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   healthHandler,
		Plans:    plansHandler,
		Checkout: checkoutHandler,
		Contact:  contactHandler,
		Orders:   ordersHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
