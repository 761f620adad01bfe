package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/pkg/logger"
	"billed-fe-svc/pkg/utils"
)

const sessionKey = "session"

// Session decodes the session token from the cookie or the Authorization
// header. Requests without a valid token continue anonymously.
func Session(decoder *session.Decoder, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(cookieName)
		}
		if token == "" {
			c.Next()
			return
		}

		sess, err := decoder.Decode(token)
		if err != nil {
			log.WithError(err).Debug("Ignoring invalid session token")
			c.Next()
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session decoded by Session
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok && sess != nil
}

// RequireEmployeeAPI rejects API calls that are not made by an employee
func RequireEmployeeAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		if !ok {
			utils.UnauthorizedResponse(c, "Authentication required")
			return
		}
		if !sess.IsEmployee() {
			utils.ForbiddenResponse(c, "Employee access only")
			return
		}
		c.Next()
	}
}

// RequireEmployeePage renders the error page for visitors that are not
// signed in as an employee
func RequireEmployeePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		if !ok {
			c.HTML(http.StatusUnauthorized, "error.html", gin.H{"Error": "Erreur 401: veuillez vous connecter"})
			c.Abort()
			return
		}
		if !sess.IsEmployee() {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"Error": "Erreur 403: accès réservé aux employés"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
