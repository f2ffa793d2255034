package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"microwave-converter/internal/api/middleware"
	"microwave-converter/internal/catalog"
	"microwave-converter/internal/convert"
	"microwave-converter/internal/logger"
)

// Handler wires the HTTP layer to the conversion engine, presets,
// templates and logging.
type Handler struct {
	engine  *convert.Engine
	presets *catalog.Presets
	tmpl    *template.Template
	log     *logger.Logger
	limiter *rate.Limiter
}

// NewHandler constructs a handler. tmpl and limiter may be nil; a nil
// tmpl disables the form pages and a nil limiter disables rate
// limiting.
func NewHandler(engine *convert.Engine, presets *catalog.Presets, tmpl *template.Template, log *logger.Logger, limiter *rate.Limiter) *Handler {
	return &Handler{
		engine:  engine,
		presets: presets,
		tmpl:    tmpl,
		log:     log,
		limiter: limiter,
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(h.log))
	if h.limiter != nil {
		router.Use(middleware.RateLimit(h.limiter))
	}

	if h.tmpl != nil {
		router.SetHTMLTemplate(h.tmpl)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// HTML form
	if h.tmpl != nil {
		h.registerFormRoutes(router)
	}

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/convert", h.convert)
		api.POST("/convert/batch", h.convertBatch)
		api.GET("/wattages", h.listWattages)
		api.GET("/durations", h.listDurations)
	}
}

func (h *Handler) registerFormRoutes(r *gin.Engine) {
	r.GET("/", h.formIndex)
	r.POST("/convert", h.formConvert)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
