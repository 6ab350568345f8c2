package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/response"
)

// ContextAdminKey is the gin context key storing admin JWT claims.
const ContextAdminKey = "currentAdmin"

// AdminJWT protects admin routes by requiring a valid access token.
func AdminJWT(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, claims)
		c.Next()
	}
}

// AdminClaims returns the claims stored by AdminJWT, if any.
func AdminClaims(c *gin.Context) *models.AdminClaims {
	value, ok := c.Get(ContextAdminKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*models.AdminClaims)
	return claims
}
