package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

var (
	// ErrMissingToken indicates the request carried no bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken indicates the bearer token failed verification.
	ErrInvalidToken = errors.New("invalid bearer token")
)

type subjectKey struct{}

// TokenVerifier verifies a raw bearer token and returns its subject.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (string, error)
}

// OIDCVerifier verifies ID tokens issued by an OpenID Connect provider.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer's keys and builds a verifier for clientID.
func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("discover oidc provider %s: %w", issuer, err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, raw string) (string, error) {
	token, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token.Subject, nil
}

// Subject returns the verified token subject stored by Auth, if any.
func Subject(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey{}).(string)
	return sub, ok
}

// Auth returns middleware that rejects requests without a verifiable bearer token.
// Methods listed in open pass through unauthenticated.
func Auth(verifier TokenVerifier, logger *slog.Logger, open ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(open, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w, logger, r, ErrMissingToken)
				return
			}

			sub, err := verifier.Verify(r.Context(), raw)
			if err != nil {
				unauthorized(w, logger, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey{}, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, logger *slog.Logger, r *http.Request, err error) {
	logger.Warn("request unauthorized", "method", r.Method, "uri", r.URL.RequestURI(), "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="stylarch"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": ErrInvalidToken.Error()})
}

// AuthConfig holds OIDC verification settings. Enabled is a pointer so an
// overlay that omits it leaves the base value in place; Finalize resolves
// nil to false.
type AuthConfig struct {
	Enabled  *bool  `toml:"enabled"`
	Issuer   string `toml:"issuer"`
	ClientID string `toml:"client_id"`
}

// AuthEnv maps auth config fields to environment variable names for override injection.
type AuthEnv struct {
	Enabled  string
	Issuer   string
	ClientID string
}

// Bool returns a pointer to v for AuthConfig.Enabled.
func Bool(v bool) *bool {
	return &v
}

// IsEnabled reports whether bearer tokens are required.
func (c *AuthConfig) IsEnabled() bool {
	return c.Enabled != nil && *c.Enabled
}

// Finalize applies environment variable overrides and validation.
// A malformed Enabled override is an error.
func (c *AuthConfig) Finalize(env *AuthEnv) error {
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	if c.Enabled == nil {
		c.Enabled = Bool(false)
	}
	return c.validate()
}

// Merge copies the fields overlay sets. An unset Enabled keeps the base value.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Enabled != nil {
		c.Enabled = Bool(*overlay.Enabled)
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.ClientID != "" {
		c.ClientID = overlay.ClientID
	}
}

func (c *AuthConfig) loadEnv(env *AuthEnv) error {
	if v := lookup(env.Enabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env.Enabled, err)
		}
		c.Enabled = Bool(enabled)
	}
	if v := lookup(env.Issuer); v != "" {
		c.Issuer = v
	}
	if v := lookup(env.ClientID); v != "" {
		c.ClientID = v
	}
	return nil
}

func (c *AuthConfig) validate() error {
	if !c.IsEnabled() {
		return nil
	}
	if c.Issuer == "" {
		return fmt.Errorf("issuer required when auth is enabled")
	}
	if c.ClientID == "" {
		return fmt.Errorf("client_id required when auth is enabled")
	}
	return nil
}
