// Package auth issues and verifies the bearer tokens callers use to assert
// their identity.
//
// Verification never rejects a request. A missing, malformed, wrongly signed
// or expired token yields an unauthenticated Context; operations that need an
// identity call Context.Require themselves.
package auth

import (
	"context"
	"errors"
	"fmt"
	"petregistry/pkg/domain"
	"petregistry/pkg/logger"
	"petregistry/pkg/serrors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// DefaultTTL is the validity of issued tokens when Options.TTL is zero.
const DefaultTTL = time.Hour

// NotAuthenticatedMessage is the message of the error returned by Require.
const NotAuthenticatedMessage = "Not authenticated!"

var errEmptySecret = errors.New("token secret must not be empty")

// Claims is the signed payload of a token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed credential and the moment it stops being valid.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Context is the identity computed from a request's credentials. The zero
// value is unauthenticated.
type Context struct {
	UserID string
	Email  string
}

// IsAuthenticated reports whether a valid token was presented.
func (c Context) IsAuthenticated() bool { return c.UserID != "" }

// Require returns an ErrUnauthorized error unless c is authenticated.
func (c Context) Require() error {
	if !c.IsAuthenticated() {
		return serrors.With(serrors.ErrUnauthorized, NotAuthenticatedMessage)
	}

	return nil
}

// Options configures a Gateway.
type Options struct {
	// Secret is the HS256 signing key shared by issuing and verification.
	Secret string
	TTL    time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// Gateway signs and verifies tokens with a process-wide secret.
type Gateway struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// New creates a Gateway. The secret must not be empty.
func New(opts Options) (*Gateway, error) {
	if opts.Secret == "" {
		return nil, errEmptySecret
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Gateway{
		secret: []byte(opts.Secret),
		ttl:    opts.TTL,
		now:    opts.Now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(opts.Now),
		),
	}, nil
}

// IssueToken signs a token for the given user, valid for the configured TTL.
func (g *Gateway) IssueToken(userID domain.UserID, email string) (Token, error) {
	issuedAt := g.now()
	expiresAt := issuedAt.Add(g.ttl)

	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return Token{}, fmt.Errorf("could not sign token: %w", err)
	}

	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Authenticate verifies token and returns the identity it carries. Any
// verification failure yields an unauthenticated Context and is logged at
// debug level.
func (g *Gateway) Authenticate(ctx context.Context, token string) Context {
	if token == "" {
		return Context{}
	}

	claims := &Claims{}
	_, err := g.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil {
		logger.Debug(ctx, "ignoring invalid bearer token", zap.Error(err))

		return Context{}
	}
	if claims.UserID == "" {
		logger.Debug(ctx, "ignoring bearer token without user id")

		return Context{}
	}

	return Context{UserID: claims.UserID, Email: claims.Email}
}

// BearerToken extracts the token of an "Authorization: Bearer <token>"
// header value. It returns "" for any other scheme.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
