package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
	keyUserID           = "userID"
)

// AuthMiddleware validates bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token and exposes the
// caller's id through GetUserID and the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(headerAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(keyUserID, claims.UserID)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}
