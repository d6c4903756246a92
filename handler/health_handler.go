package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Database      string  `json:"database"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

// HealthHandler pings the store and reports process vitals.
func HealthHandler(c *gin.Context, client *mongo.Client) {
	status := HealthStatus{
		Status:        "ok",
		UptimeSeconds: time.Since(startTime).Seconds(),
		Database:      "up",
		CPUPercent:    utils.GetCPUUsage(),
		MemoryPercent: utils.GetMemoryUsage(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		status.Status = "degraded"
		status.Database = "down"
	}

	utils.Success(c, status)
}
