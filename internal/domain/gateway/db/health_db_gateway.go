package db

import (
	"context"
	"time"

	"todo-api/internal/domain/model"
)

const healthTimeout = 2 * time.Second

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// pingStatus turns the outcome of a ping into a component status
func pingStatus(client string, err error) model.ComponentHealthStatus {
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"client":  client,
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"client":  client,
			"message": string(model.StatusUp),
		},
	}
}
