package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 5 * time.Second

// PoolStats is a snapshot of the connection pool backing the
// calculation log, reported by the database health endpoint.
type PoolStats struct {
	Open     int32  `json:"open"`
	Idle     int32  `json:"idle"`
	InUse    int32  `json:"in_use"`
	Max      int32  `json:"max"`
	Acquires int64  `json:"acquires"`
	WaitTime string `json:"wait_time"`
}

// Saturated reports whether every pool slot is acquired. Calculation log
// inserts are quick, so a saturated pool usually means the database is
// stalled rather than the service busy.
func (s PoolStats) Saturated() bool {
	return s.Max > 0 && s.InUse >= s.Max
}

// Snapshot reads current statistics from the pool.
func Snapshot(pool *pgxpool.Pool) PoolStats {
	st := pool.Stat()
	return PoolStats{
		Open:     st.TotalConns(),
		Idle:     st.IdleConns(),
		InUse:    st.AcquiredConns(),
		Max:      st.MaxConns(),
		Acquires: st.AcquireCount(),
		WaitTime: st.AcquireDuration().String(),
	}
}

// HealthHandler serves the database health endpoint. It pings the
// database with a short timeout and reports pool statistics either way,
// so an operator can tell a dead database from an exhausted pool.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		stats := Snapshot(pool)

		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":    "unhealthy",
				"error":     err.Error(),
				"saturated": stats.Saturated(),
				"pool":      stats,
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"pool":   stats,
		})
	}
}
