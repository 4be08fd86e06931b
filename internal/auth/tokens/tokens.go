package tokens

import (
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jessndots/express-jobly/internal/platform/config"
	"github.com/jessndots/express-jobly/internal/types"
)

// KeyID is written to the kid header of every issued token.
const KeyID = "jobly-auth-key-1"

// JoblyClaims carries the user payload under types.ClaimKey.
type JoblyClaims struct {
	Claim map[string]interface{} `json:"claim"`
	jwt.RegisteredClaims
}

// Creator issues signed tokens for a user.
type Creator interface {
	CreateToken(user types.UserContext) (string, error)
}

var _ Creator = (*Issuer)(nil)

// Issuer signs ES256 tokens for authenticated users.
type Issuer struct {
	key    *ecdsa.PrivateKey
	issuer string
	ttl    time.Duration
}

// NewIssuer parses the configured EC private key.
func NewIssuer(cfg config.JWTConfig) (*Issuer, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(cfg.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse EC private key: %w", err)
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{key: key, issuer: cfg.Issuer, ttl: ttl}, nil
}

// CreateToken signs a token for user.
func (i *Issuer) CreateToken(user types.UserContext) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := JoblyClaims{
		Claim: map[string]interface{}{
			"username": user.Username,
			"isAdmin":  user.IsAdmin,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Issuer:    i.issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = KeyID
	return token.SignedString(i.key)
}
