package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"crms/internal/model"
)

const (
	// UserTokenExpiry is the validity window for officer/investigator tokens.
	UserTokenExpiry = 30 * 24 * time.Hour
	// AdminTokenExpiry is the shorter validity window for admin tokens.
	AdminTokenExpiry = 24 * time.Hour
)

var (
	// ErrTokenExpired is returned when the token's validity window has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned when the token cannot be parsed or its
	// signature does not verify.
	ErrTokenMalformed = errors.New("invalid token")
	// ErrTokenRevoked is returned when the token has been denylisted.
	ErrTokenRevoked = errors.New("token revoked")
)

// Claims represents JWT claims carrying identity and role.
type Claims struct {
	UserID string     `json:"id,omitempty"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and validation. The signing secret is
// process-wide configuration injected once at startup.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Generate signs a token for the given identity with expiry now + ttl. Admin
// tokens carry an empty userID since admin identities are not stored.
func (s *JWTService) Generate(userID, email string, role model.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature integrity and expiry and returns the decoded
// claims. Expired tokens are distinguished from malformed ones.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
