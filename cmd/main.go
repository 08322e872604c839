package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/order-coordinator/internal/api"
	"github.com/akylbek/payment-system/order-coordinator/internal/config"
	"github.com/akylbek/payment-system/order-coordinator/internal/events"
	"github.com/akylbek/payment-system/order-coordinator/internal/interfaces"
	"github.com/akylbek/payment-system/order-coordinator/internal/lock"
	"github.com/akylbek/payment-system/order-coordinator/internal/repository"
	"github.com/akylbek/payment-system/order-coordinator/internal/service"
	"github.com/akylbek/payment-system/order-coordinator/internal/telemetry"
)

func main() {
	cfg := config.Load()

	if err := telemetry.InitTelemetry("order-coordinator"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Order Coordinator")

	var (
		orderRepo     interfaces.OrderRepository
		paymentRepo   interfaces.PaymentRepository
		orderItemRepo interfaces.OrderItemRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			telemetry.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		orders := repository.NewOrderRepository(db)
		payments := repository.NewPaymentRepository(db)
		orderItems := repository.NewOrderItemRepository(db)
		for _, init := range []func() error{orders.InitDB, payments.InitDB, orderItems.InitDB} {
			if err := init(); err != nil {
				telemetry.Logger.Fatal("Failed to initialize database", zap.Error(err))
			}
		}
		orderRepo, paymentRepo, orderItemRepo = orders, payments, orderItems
	} else {
		telemetry.Logger.Warn("DATABASE_URL not set, using in-memory stores")
		orderRepo = repository.NewMemoryOrderRepository()
		paymentRepo = repository.NewMemoryPaymentRepository()
		orderItemRepo = repository.NewMemoryOrderItemRepository()
	}

	var locker lock.Locker
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		locker = lock.NewRedisLocker(redisClient)
	} else {
		telemetry.Logger.Warn("REDIS_URL not set, using in-process order locks")
		locker = lock.NewMemoryLocker()
	}

	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()

	coordinator := service.NewCoordinator(orderRepo, paymentRepo, locker, publisher, telemetry.Logger)
	orderItems := service.NewOrderItemService(orderItemRepo, telemetry.Logger)

	r := api.NewRouter(coordinator, orderItems, orderRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		telemetry.Logger.Info("Order Coordinator starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
