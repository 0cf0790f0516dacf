package db

import (
	"context"
	"database/sql"
	"strconv"

	"todo-api/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	status := pingStatus("sql", gateway.DB.PingContext(ctx))

	stats := gateway.DB.Stats()
	status.Details["open_connections"] = strconv.Itoa(stats.OpenConnections)
	status.Details["in_use"] = strconv.Itoa(stats.InUse)
	status.Details["wait_count"] = strconv.FormatInt(stats.WaitCount, 10)
	return status
}
