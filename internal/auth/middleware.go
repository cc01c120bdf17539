package auth

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "crms/internal/errors"
	"crms/internal/model"
	"crms/internal/repository"
)

const identityContextKey = "identity"

// Middleware guards protected routes: it verifies bearer tokens, resolves the
// acting identity from the credential store, and enforces role requirements.
type Middleware struct {
	jwtService *JWTService
	tokenStore TokenStoreInterface
	users      repository.UserRepository
	adminEmail string
}

// NewMiddleware creates the route protection middleware.
func NewMiddleware(jwtService *JWTService, tokenStore TokenStoreInterface, users repository.UserRepository, adminEmail string) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		users:      users,
		adminEmail: adminEmail,
	}
}

// JWTConfig returns the echo-jwt configuration for the secured route group.
// Verification covers signature, expiry and the denylist.
func (m *Middleware) JWTConfig() echojwt.Config {
	return echojwt.Config{
		TokenLookup:    "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: m.parseToken,
		ErrorHandler:   m.errorHandler,
	}
}

func (m *Middleware) parseToken(c echo.Context, tokenString string) (interface{}, error) {
	claims, err := m.jwtService.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.ID != "" {
		revoked, _ := m.tokenStore.IsRevoked(c.Request().Context(), claims.ID)
		if revoked {
			return nil, ErrTokenRevoked
		}
	}
	return claims, nil
}

func (m *Middleware) errorHandler(c echo.Context, err error) error {
	msg := "Invalid Token or Not Authorized"
	if errors.Is(err, echojwt.ErrJWTMissing) {
		msg = "Not Authorized, Login Again"
	}
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.Response{Success: false, Message: msg})
}

// ClaimsFrom returns the verified token claims, or nil outside the secured
// group.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get("user").(*Claims)
	return claims
}

// IdentityFrom returns the store-resolved identity attached by RequireUser.
func IdentityFrom(c echo.Context) *model.User {
	user, _ := c.Get(identityContextKey).(*model.User)
	return user
}

// RequireUser re-fetches the acting identity from the credential store so
// role changes and deactivation made after token issuance take effect
// immediately. The resolved identity is attached to the context.
func (m *Middleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return unauthorized("Not Authorized, Login Again")
		}

		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			return unauthorized("Invalid Token or Not Authorized")
		}

		user, err := m.users.FindByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized("Not Authorized, Login Again")
			}
			he := apperrors.MapErrorToHTTP(apperrors.ErrStoreUnavailable)
			return echo.NewHTTPError(he.StatusCode, he.ToResponse())
		}
		if user.Status != model.StatusActive {
			return unauthorized("Not Authorized, Login Again")
		}

		c.Set(identityContextKey, user)
		return next(c)
	}
}

// RequireAdmin admits only tokens minted by the admin login path. The claimed
// email is re-checked against the configured admin email, which is the admin
// counterpart of re-fetching a stored identity.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return unauthorized("Not Authorized, Login Again")
		}
		if m.adminEmail == "" || claims.Role != model.RoleAdmin || claims.Email != m.adminEmail {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.Response{Success: false, Message: "Not Authorized"})
		}
		return next(c)
	}
}

func unauthorized(msg string) error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.Response{Success: false, Message: msg})
}
