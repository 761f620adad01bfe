package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"billed-fe-svc/pkg/logger"
	"billed-fe-svc/pkg/utils"
)

// ErrorHandler recovers from panics and answers with a 500 envelope
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", fmt.Sprint(recovered)).Error("Recovered from panic")
		utils.InternalServerErrorResponse(c, "Internal server error", nil)
	})
}

// NoRouteHandler answers unknown routes
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Route not found")
	}
}

// NoMethodHandler answers known routes called with the wrong method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
}
