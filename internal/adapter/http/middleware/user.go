package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskstats/internal/adapter/http/validation"
	"taskstats/pkg/apierrors"
)

const (
	UserIDHeader = "X-User-ID"
	userIDKey    = "user_id"
)

// UserMiddleware reads the caller id set by the upstream auth layer.
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := validation.UserID(c.GetHeader(UserIDHeader))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidUserID, GetLang(c)),
			)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) uint64 {
	return c.GetUint64(userIDKey)
}
