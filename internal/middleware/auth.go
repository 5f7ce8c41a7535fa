package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justconnect/justconnect-api/internal/config"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/token"
)

const ContextIdentity = "identity"

// Identity is the verified caller attached to the request context by
// AuthMiddleware.
type Identity struct {
	ID    uint
	Name  string
	Role  string
	Email string
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := token.Verify(parts[1], cfg.JWTSecret)
		if err != nil {
			httperr.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextIdentity, Identity{
			ID:    claims.ID,
			Name:  claims.Name,
			Role:  claims.Role,
			Email: claims.Email,
		})

		c.Next()
	}
}

// RequireRoles permits the request only when the attached identity's role
// is in the allow-list. It fails closed when AuthMiddleware did not run.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			httperr.Unauthorized(c, "missing identity")
			c.Abort()
			return
		}

		if _, ok := allowed[id.Role]; !ok {
			httperr.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}

		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
