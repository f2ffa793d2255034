package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List wattage presets
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/wattages [get]
func (h *Handler) listWattages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"wattages": h.presets.Wattages,
		"count":    len(h.presets.Wattages),
	})
}

// @Summary      List duration presets
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/durations [get]
func (h *Handler) listDurations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"durations": h.presets.Durations,
		"count":     len(h.presets.Durations),
	})
}
