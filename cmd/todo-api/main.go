package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"todo-api/configs"
	_ "todo-api/docs"
	"todo-api/internal/application/schedule"
	"todo-api/internal/application/server"
	"todo-api/internal/domain/gateway/db"
	ratelimitgateway "todo-api/internal/domain/gateway/ratelimit"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/ratelimit"
	"todo-api/internal/domain/usecase/todo"
	gormdb "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/migration"
	"todo-api/internal/infra/database/sqlc"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

// @title Todo API
// @version 1.0
// @description Persisted to-do list exposed as a JSON REST API.
// @host localhost:3000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	configPath := pflag.String("config", "", "path of an application.yml overriding the embedded one")
	port := pflag.String("port", "", "HTTP port, overrides app.server.port")
	pflag.Parse()

	if *configPath != "" {
		resource.Init(*configPath)
	}
	if *port != "" {
		resource.Set("app.server.port", *port)
	}

	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	sqlDB, err := sqlc.Open(ctx)
	if err != nil {
		log.Fatal(msg.GetMessage("app.error"), zap.Error(err))
	}
	defer sqlDB.Close()

	if err = migration.Migrate(ctx, sqlDB); err != nil {
		log.Fatal(msg.GetMessage("app.error"), zap.Error(err))
	}

	todoGateway, healthDBGateway := initDBGateways(sqlDB)
	rateLimitGateway, closeRateLimit := initRateLimitGateway()
	defer closeRateLimit()

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoGateway)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, rateLimitGateway)
	rateLimitUseCase := ratelimit.NewRateLimitUseCase(rateLimitGateway)

	// Init Routes
	e := server.New(server.ConfigFromProperties(configs.Env.IsProduction()), server.UseCases{
		Todo:      todoUseCase,
		Health:    healthUseCase,
		RateLimit: rateLimitUseCase,
	})

	// Init Schedule
	rateLimitScheduler := schedule.NewRateLimitScheduler(rateLimitUseCase)
	if err = rateLimitScheduler.InitRateLimitScheduleTasks(resource.GetString("app.rate-limit.sweep-cron")); err != nil {
		log.Fatal(msg.GetMessage("app.error"), zap.Error(err))
	}
	defer rateLimitScheduler.Stop()

	// Start Routes
	address := ":" + resource.GetString("app.server.port")
	go func() {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.error"), zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", resource.GetString("app.server.port")))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error"), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}

// initDBGateways picks the database client configured in app.db.client
func initDBGateways(sqlDB *sql.DB) (db.TodoGateway, db.HealthDBGateway) {
	client := resource.GetString("app.db.client")
	log.Info(msg.GetMessage("app.db-connected", resource.GetString("app.db.database"), client))

	if client == "gorm" {
		gormDB, err := gormdb.Open(sqlDB)
		if err != nil {
			log.Fatal(msg.GetMessage("app.error"), zap.Error(err))
		}
		return db.NewGormTodoGateway(gormDB), db.NewGormHealthDBGateway(gormDB)
	}
	return db.NewSQLCTodoGateway(sqlDB), db.NewSQLCHealthDBGateway(sqlDB)
}

// initRateLimitGateway picks the store configured in app.rate-limit.store
func initRateLimitGateway() (ratelimitgateway.Gateway, func()) {
	window := resource.GetDuration("app.rate-limit.window")
	limit := resource.GetInt("app.rate-limit.max-requests")

	if resource.GetString("app.rate-limit.store") != "redis" {
		return ratelimitgateway.NewMemoryRateLimitGateway(window, limit), func() {}
	}

	client, err := redis.NewClient(redis.DefaultConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))
	if err != nil {
		log.Fatal(msg.GetMessage("app.error"), zap.Error(err))
	}

	gateway, err := ratelimitgateway.NewRedisRateLimitGateway(client, resource.GetString("app.rate-limit.namespace"), window, limit)
	if err != nil {
		log.Fatal(msg.GetMessage("app.error"), zap.Error(err))
	}
	return gateway, func() { _ = client.Close() }
}
