package health

import (
	"context"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/ratelimit"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway        db.HealthDBGateway
	rateLimitGateway ratelimit.Gateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, rateLimitGateway ratelimit.Gateway) UseCase {
	return &healthUseCase{
		dbGateway:        dbGateway,
		rateLimitGateway: rateLimitGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	rateLimitHealth := useCase.rateLimitGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || rateLimitHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Database:    dbHealth,
		RateLimiter: rateLimitHealth,
	}
}
