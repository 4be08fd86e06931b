package testutil

import (
	"testing"
	"time"

	"github.com/jessndots/express-jobly/internal/auth/tokens"
	"github.com/jessndots/express-jobly/internal/platform/config"
	"github.com/jessndots/express-jobly/internal/types"
	"github.com/stretchr/testify/require"
)

// TestAuth bundles a fresh key pair with ready-made tokens.
type TestAuth struct {
	PublicKey  string
	PrivateKey string
	Issuer     *tokens.Issuer
	// AdminToken belongs to "admin", UserToken and OtherToken to "u1" and "u2".
	AdminToken string
	UserToken  string
	OtherToken string
}

// NewTestAuth generates keys and signs tokens for an admin and two users.
func NewTestAuth(t *testing.T) *TestAuth {
	t.Helper()
	pub, priv := GenerateECDSAKeyPairPEM(t)

	issuer, err := tokens.NewIssuer(config.JWTConfig{PrivateKey: priv, PublicKey: pub, Issuer: "jobly-test", TTL: time.Hour})
	require.NoError(t, err)

	sign := func(u types.UserContext) string {
		token, err := issuer.CreateToken(u)
		require.NoError(t, err)
		return token
	}

	return &TestAuth{
		PublicKey:  pub,
		PrivateKey: priv,
		Issuer:     issuer,
		AdminToken: sign(types.UserContext{Username: "admin", IsAdmin: true}),
		UserToken:  sign(types.UserContext{Username: "u1"}),
		OtherToken: sign(types.UserContext{Username: "u2"}),
	}
}

// Config returns a loaded configuration using these keys.
func (a *TestAuth) Config(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFromMap(map[string]string{
		"JWT_PUBLIC_KEY":  a.PublicKey,
		"JWT_PRIVATE_KEY": a.PrivateKey,
		"TEST_MODE":       "true",
		"CACHE_ENABLED":   "false",
	})
	require.NoError(t, err)
	return cfg
}
