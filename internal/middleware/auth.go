package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/config"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

const ContextActor = "actor"

// AuthMiddleware verifies an HS256 bearer token carrying sub (customer uuid) and role.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		sub, _ := claims["sub"].(string)
		roleClaim, _ := claims["role"].(string)

		id, err := uuid.Parse(sub)
		if err != nil {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}
		role, ok := identity.ParseRole(roleClaim)
		if !ok {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextActor, identity.Actor{ID: id, Role: role})
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abortUnauthorized(c, "missing_actor")
			return
		}
		if actor.Role != role {
			httperr.Respond(c, httperr.ErrBusinessf(httperr.CodeUnauthorized, "requires "+string(role)))
			c.Abort()
			return
		}
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (identity.Actor, bool) {
	v, exists := c.Get(ContextActor)
	if !exists {
		return identity.Actor{}, false
	}
	actor, ok := v.(identity.Actor)
	return actor, ok
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Authentication required.")
	c.Abort()
}
