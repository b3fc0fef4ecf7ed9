package httpserver

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fastlaundry/internal/domain"
)

const (
	sessionCookie = "laundry_session"
	sessionCtxKey = "sessionID"
	roleHeader    = "X-User-Role"
	viewerHeader  = "X-User-Id"

	sessionTTL = 30 * 24 * time.Hour
)

// sessionMiddleware pins every request to a session. A missing or empty
// cookie gets a fresh uuid; the cart lives under that id in the session
// store, so the cookie is the cart's only handle.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, int(sessionTTL.Seconds()), "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}

// viewerRole trusts the upstream auth layer's role header. Absent or
// unknown values fall back to customer, the least-privileged role.
func viewerRole(c *gin.Context) domain.Role {
	return domain.ParseRole(c.GetHeader(roleHeader))
}

func viewerID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(viewerHeader))
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
