package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nubereats/backend/internal/models"
)

// TokenHeader is the alternative header carrying a bare token.
const TokenHeader = "x-jwt"

// Authenticator resolves a token to the user it was issued for
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying user as the request principal
func WithPrincipal(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// PrincipalFrom returns the request principal, or nil for anonymous requests
func PrincipalFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(principalKey{}).(*models.User)
	return user
}

// AuthMiddleware attaches the authenticated user to the request context.
// Requests without a token, or with one that does not resolve, continue
// anonymously; resolvers decide whether a principal is required.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", user.ID)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), user))
		c.Next()
	}
}

// RequirePrincipal rejects anonymous requests with 401
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if PrincipalFrom(c.Request.Context()) == nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.GetHeader(TokenHeader))
}
