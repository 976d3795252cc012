package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
	designtypes "github.com/canopyforge/canopyforge/pkg/types/design"

	"github.com/canopyforge/canopyforge/internal/application/design"
)

// DesignHandler serves the design pipeline endpoints.
type DesignHandler struct {
	svc *design.Service
}

// NewDesignHandler creates a DesignHandler backed by svc.
func NewDesignHandler(svc *design.Service) *DesignHandler {
	return &DesignHandler{svc: svc}
}

// Create handles POST /api/v1/designs: it runs the full pipeline for the
// posted request and returns the artifact paths and mesh stats.
func (h *DesignHandler) Create(c *gin.Context) {
	var req designtypes.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.svc.Run(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
