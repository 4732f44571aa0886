package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports database reachability and pool pressure.
type HealthStatus struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
	Open         int    `json:"open_connections"`
	InUse        int    `json:"in_use"`
	Idle         int    `json:"idle"`
	WaitCount    int64  `json:"wait_count"`
	WaitDuration int64  `json:"wait_duration_ms"`
	MaxOpen      int    `json:"max_open_conns"`
}

// Health pings the database and snapshots the connection pool. A failed
// ping still returns a status record so the health endpoint can report
// the latency of the failure.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	pool := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
		Open:         pool.OpenConnections,
		InUse:        pool.InUse,
		Idle:         pool.Idle,
		WaitCount:    pool.WaitCount,
		WaitDuration: pool.WaitDuration.Milliseconds(),
		MaxOpen:      pool.MaxOpenConnections,
	}, nil
}
