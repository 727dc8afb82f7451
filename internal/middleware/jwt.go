package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// TokenCookie is the HTTP-only cookie that carries the session token.
const TokenCookie = "Token"

const adminLocalsKey = "admin"

// JWTConfig holds JWT middleware configuration.
type JWTConfig struct {
	Secret    string
	Issuer    string
	ExpiresIn time.Duration
}

// AdminLoader fetches the account a token was issued for.
type AdminLoader interface {
	GetAdmin(ctx context.Context, id string) (*domain.Admin, error)
}

// JWTMiddleware creates a Fiber middleware that validates JWT tokens, loads
// the account and injects an AdminContext into the request context.
func JWTMiddleware(cfg JWTConfig, admins AdminLoader) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return unauthorized(c, "Not authorized, no token")
		}

		claims, err := validateJWT(token, cfg.Secret, cfg.Issuer)
		if err != nil {
			return unauthorized(c, "Not authorized, "+err.Error())
		}

		admin, err := admins.GetAdmin(c.Context(), claims.Subject)
		if errors.Is(err, port.ErrNotFound) {
			return unauthorized(c, "Not authorized, admin not found")
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Server error",
			})
		}
		if !admin.IsActive {
			return unauthorized(c, "Account is deactivated")
		}

		c.Locals(adminLocalsKey, &domain.AdminContext{
			AdminID: admin.ID,
			Email:   admin.Email,
			Name:    displayName(admin),
			Role:    admin.Role,
		})

		return c.Next()
	}
}

// tokenFromRequest checks the Authorization header, then the session cookie,
// then ?token= (for SSE/EventSource which can't set headers).
func tokenFromRequest(c fiber.Ctx) string {
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie := c.Cookies(TokenCookie); cookie != "" {
		return cookie
	}
	return c.Query("token")
}

func unauthorized(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

// RequireAdmin rejects callers without the admin role. It must run after JWTMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !GetAdminContext(c).IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Admin role required",
			})
		}
		return c.Next()
	}
}

// GetAdminContext extracts the AdminContext from Fiber locals.
func GetAdminContext(c fiber.Ctx) *domain.AdminContext {
	a, ok := c.Locals(adminLocalsKey).(*domain.AdminContext)
	if !ok {
		return nil
	}
	return a
}

func displayName(a *domain.Admin) string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// --- JWT Claims & Helpers ---

// Claims represents the JWT payload.
type Claims struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Issuer    string `json:"iss"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// GenerateJWT creates a new signed JWT for the given account.
func GenerateJWT(admin *domain.Admin, cfg JWTConfig) (string, error) {
	now := time.Now()
	claims := Claims{
		Subject:   admin.ID,
		Email:     admin.Email,
		Name:      displayName(admin),
		Role:      admin.Role,
		Issuer:    cfg.Issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(cfg.ExpiresIn).Unix(),
	}

	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	headerB64 := base64.RawURLEncoding.EncodeToString(headerJSON)
	claimsB64 := base64.RawURLEncoding.EncodeToString(claimsJSON)

	signingInput := headerB64 + "." + claimsB64
	signature := signHS256(signingInput, cfg.Secret)

	return signingInput + "." + signature, nil
}

func validateJWT(tokenStr, secret, expectedIssuer string) (*Claims, error) {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: invalid token format", port.ErrTokenInvalid)
	}

	// Verify signature
	signingInput := parts[0] + "." + parts[1]
	expectedSig := signHS256(signingInput, secret)
	if !hmac.Equal([]byte(parts[2]), []byte(expectedSig)) {
		return nil, fmt.Errorf("%w: invalid token signature", port.ErrTokenInvalid)
	}

	claimsJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token encoding", port.ErrTokenInvalid)
	}

	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, fmt.Errorf("%w: invalid token claims", port.ErrTokenInvalid)
	}

	if time.Now().Unix() > claims.ExpiresAt {
		return nil, port.ErrTokenExpired
	}

	if claims.Issuer != expectedIssuer {
		return nil, fmt.Errorf("%w: invalid token issuer", port.ErrTokenInvalid)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", port.ErrTokenInvalid)
	}

	return &claims, nil
}

func signHS256(input, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(input))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
