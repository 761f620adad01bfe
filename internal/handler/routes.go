package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"billed-fe-svc/internal/middleware"
	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/repository"
	"billed-fe-svc/internal/service"
	"billed-fe-svc/internal/store"
	"billed-fe-svc/pkg/logger"
)

// StoreFactory returns a bills store authenticated as the given session token
type StoreFactory func(token string) store.Store

// Routes sets up all page and API routes
func SetupRoutes(
	router *gin.Engine,
	newStore StoreFactory,
	exportService service.ExportService,
	submissionLogs repository.SubmissionLogRepository,
	maxUploadBytes int64,
	logger *logger.Logger,
) {
	// Initialize handlers
	billsHandler := NewBillsHandler(newStore, exportService, logger)
	newBillHandler := NewNewBillHandler(newStore, submissionLogs, maxUploadBytes, logger)
	apiHandler := NewAPIHandler(newStore, submissionLogs, maxUploadBytes, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login lives on the bills API side; the front only links to it
	router.GET(models.RouteLogin, func(c *gin.Context) {
		if _, ok := middleware.SessionFromContext(c); ok {
			c.Redirect(http.StatusSeeOther, models.RouteBills)
			return
		}
		c.HTML(http.StatusUnauthorized, "error.html", gin.H{"Error": "Erreur 401: veuillez vous connecter"})
	})

	employee := router.Group("/employee", middleware.RequireEmployeePage())
	{
		employee.GET("/bills", billsHandler.GetBillsPage)
		employee.POST("/bills/new-bill", billsHandler.ClickNewBill)
		employee.GET("/bills/export", billsHandler.ExportBills)

		employee.GET("/bill/new", newBillHandler.GetNewBillPage)
		employee.POST("/bill/new", newBillHandler.SubmitNewBill)
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		authed := v1.Group("", middleware.RequireEmployeeAPI())
		{
			authed.GET("/bills", apiHandler.GetBills)
			authed.POST("/receipts/validate", apiHandler.ValidateReceipt)
			authed.GET("/submissions", apiHandler.GetSubmissions)
		}
	}
}

// HealthCheck reports that the server is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Billed Front Service",
	})
}

// redirectTo navigates the browser with a 303 so a POST is followed by a GET
func redirectTo(c *gin.Context) service.Navigator {
	return func(route string) {
		c.Redirect(http.StatusSeeOther, route)
	}
}

func sessionToken(c *gin.Context) string {
	if sess, ok := middleware.SessionFromContext(c); ok {
		return sess.Token
	}
	return ""
}
