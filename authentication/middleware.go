package authentication

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID   = "userID"
	CtxDoctorID = "doctorID"
)

// UserAuthMiddleware rejects requests without a valid user token and stores
// the caller's user id on the context.
func UserAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization is missing"})
			return
		}
		claims, err := AuthenticateUser(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}
		c.Set(CtxUserID, claims.UserID)
		c.Next()
	}
}

// DoctorAuthMiddleware is the doctor-side counterpart of UserAuthMiddleware.
func DoctorAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization is missing"})
			return
		}
		claims, err := AuthenticateDoctor(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}
		c.Set(CtxDoctorID, claims.DoctorID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
