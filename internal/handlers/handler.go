package handlers

import (
	"net/http"

	"finance_tracker/internal/logger"
	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const statusOK = "ok"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	uploadDir string
}

// NewHandler constructs a new HTTP handler with dependencies.
// uploadDir is where profile pictures are stored and served from.
func NewHandler(services *service.Service, log *logger.Logger, uploadDir string) *Handler {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &Handler{services: services, log: log, uploadDir: uploadDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Uploaded profile pictures, served by filename
	router.Static("/uploads", h.uploadDir)

	api := router.Group("/api")
	{
		h.registerAuthRoutes(api)
		h.registerTransactionRoutes(api)
		h.registerShareRoutes(api)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/profile/:id", h.userIdMiddleware, h.getProfile)
	}
}

func (h *Handler) registerTransactionRoutes(api *gin.RouterGroup) {
	tx := api.Group("/transactions", h.userIdMiddleware)
	{
		tx.GET("", h.listTransactions)
		tx.POST("", h.addTransaction)
		tx.GET("/summary", h.getSummary)
		tx.DELETE("/:id", h.deleteTransaction)
	}
}

func (h *Handler) registerShareRoutes(api *gin.RouterGroup) {
	share := api.Group("/share", h.userIdMiddleware)
	{
		share.POST("/send", h.sendShare)
	}
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
