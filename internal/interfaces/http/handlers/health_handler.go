package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	version string
	startAt time.Time
}

// NewHealthHandler creates a HealthHandler reporting the given version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, startAt: time.Now()}
}

// LivenessResponse is the /healthz response body.
type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Liveness handles GET /healthz. The service has no external dependencies,
// so a running process is a healthy process.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.startAt).Round(time.Second).String(),
	})
}
