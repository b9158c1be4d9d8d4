package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{pool: pool, rdb: rdb}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	database := "ok"
	cache := "ok"

	if err := h.pool.Ping(c); err != nil {
		database = "unreachable"
		status = http.StatusServiceUnavailable
	}
	if err := h.rdb.Ping(c).Err(); err != nil {
		cache = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   http.StatusText(status),
		"database": database,
		"redis":    cache,
	})
}
