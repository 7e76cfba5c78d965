package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/utils"
)

type tokenValidator interface {
	ValidateToken(tokenString string) (models.Credentials, error)
}

type Authentication struct {
	Validator tokenValidator
}

func NewAuthentication(validator tokenValidator) Authentication {
	return Authentication{
		Validator: validator,
	}
}

// Middleware authenticates the request from its Authorization header and
// stores the resulting credentials in the request context.
func (a *Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	jwtToken, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		_ = c.Error(fmt.Errorf("could not parse authorization header: %w", err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if jwtToken == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	credentials, err := a.Validator.ValidateToken(jwtToken)
	if err != nil {
		_ = c.Error(fmt.Errorf("validator.ValidateToken error: %w", err))
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	newContext := utils.StoreCredentialsInContext(ctx, credentials)
	logger := utils.LoggerFromContext(newContext).
		With(slog.String("Email", credentials.ActorIdentity.Email)).
		With(slog.String("Role", credentials.Role.String()))
	c.Request = c.Request.WithContext(utils.StoreLoggerInContext(newContext, logger))
	c.Next()
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 {
		return "", fmt.Errorf("malformed token: %w", models.UnAuthorizedError)
	}
	return authHeader[1], nil
}
