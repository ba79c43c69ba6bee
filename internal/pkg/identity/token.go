package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"laundry/internal/entities"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type UserMetadata struct {
	Name     string `json:"name,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// Claims - полезная нагрузка токена провайдера аутентификации.
type Claims struct {
	jwt.RegisteredClaims
	Email        string       `json:"email,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

func (c *Claims) Caller() entities.Caller {
	name := c.UserMetadata.Name
	if name == "" {
		name = c.UserMetadata.FullName
	}
	return entities.Caller{
		ID:    c.Subject,
		Email: strings.ToLower(strings.TrimSpace(c.Email)),
		Name:  strings.TrimSpace(name),
	}
}

type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenVerifier(secret, issuer, audience string) *TokenVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &TokenVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

func (v *TokenVerifier) Verify(raw string) (entities.Caller, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entities.Caller{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return entities.Caller{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return claims.Caller(), nil
}

// BearerToken достает токен из заголовка Authorization.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}
