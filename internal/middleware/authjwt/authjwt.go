package authjwt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The EC public key for validating ES256 tokens.
	PublicKey string
	// The claim key where the UserContext is stored.
	ClaimKey string
	// The context key to store the UserContext.
	UserCtxName string
	// Optional lets requests without a token through anonymously. An invalid
	// token is still rejected.
	Optional bool
}

func configDefault(cfg Config) Config {
	if cfg.ClaimKey == "" {
		cfg.ClaimKey = types.ClaimKey
	}
	if cfg.UserCtxName == "" {
		cfg.UserCtxName = types.UserCtxName
	}
	return cfg
}

// New creates a new middleware handler. It panics if the public key does not
// parse.
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	verifier, err := NewVerifier(cfg.PublicKey, cfg.ClaimKey)
	if err != nil {
		panic(err.Error())
	}

	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			if cfg.Optional {
				return c.Next()
			}
			return unauthorized(c, "Missing or invalid JWT")
		}

		user, err := verifier.Verify(tokenString)
		if err != nil {
			return unauthorized(c, err.Error())
		}

		c.Locals(cfg.UserCtxName, user)
		return c.Next()
	}
}

// Verifier validates ES256 tokens and extracts the UserContext.
type Verifier struct {
	key      interface{}
	claimKey string
}

// NewVerifier parses publicKey once for repeated verification.
func NewVerifier(publicKey, claimKey string) (*Verifier, error) {
	ecPublicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse EC public key: %w", err)
	}
	return &Verifier{key: ecPublicKey, claimKey: claimKey}, nil
}

// Verify validates tokenString and returns the user it was issued for.
// Expiry is enforced by the parser.
func (v *Verifier) Verify(tokenString string) (types.UserContext, error) {
	var user types.UserContext

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.key, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user, errors.New("Token has expired")
		}
		return user, errors.New("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return user, errors.New("Invalid token")
	}

	claimData, ok := claims[v.claimKey].(map[string]interface{})
	if !ok {
		return user, errors.New("Invalid token claim format")
	}
	return mapToUserContext(claimData)
}

func mapToUserContext(claimData map[string]interface{}) (types.UserContext, error) {
	var user types.UserContext

	username, ok := claimData["username"].(string)
	if !ok || username == "" {
		return user, errors.New("missing or invalid username in claim")
	}
	user.Username = username

	if isAdmin, ok := claimData["isAdmin"].(bool); ok {
		user.IsAdmin = isAdmin
	}

	return user, nil
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get(types.HeaderAuthorization)
	if strings.HasPrefix(authHeader, types.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, types.BearerPrefix))
	}
	return c.Cookies("access_token")
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(apperrors.ErrorResponse{
		Code:    apperrors.CodeUnauthorized,
		Message: message,
	})
}

// UserFrom returns the authenticated user stored by New, if any.
func UserFrom(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}
