package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lotusmall/web-gateway/internal/observability"
	"github.com/lotusmall/web-gateway/internal/persistence"
	"github.com/lotusmall/web-gateway/internal/upstream"
)

// HealthHandler responds to liveness and readiness probes and exposes the
// in-memory counters.
type HealthHandler struct {
	serviceName string
	version     string
	redis       *persistence.Redis
	api         *upstream.Client
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, redis *persistence.Redis, api *upstream.Client, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, redis: redis, api: api, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Metrics dumps the request, error and gate-redirect counters.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	requests, errCounts, redirects := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests":  requests,
		"errors":    errCounts,
		"redirects": redirects,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
		ready = false
	} else {
		depStatus["redis"] = "ok"
	}

	if err := h.api.Ping(ctx); err != nil {
		depStatus["upstream"] = err.Error()
		ready = false
	} else {
		depStatus["upstream"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
