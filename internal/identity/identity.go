package identity

import (
	"context"
	"crypto/subtle"
	"strings"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Principal - автор запроса.
type Principal struct {
	Subject string
	Role    Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Anonymous - покупатель без учетной записи.
var Anonymous = Principal{Subject: "anonymous", Role: RoleCustomer}

// Provider определяет роль по предъявленному токену.
type Provider interface {
	Authenticate(ctx context.Context, token string) Principal
}

// StaticTokenProvider признает администратором владельца единственного токена из конфигурации.
type StaticTokenProvider struct {
	token []byte
}

func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: []byte(token)}
}

func (p *StaticTokenProvider) Authenticate(_ context.Context, token string) Principal {
	if len(p.token) == 0 || token == "" {
		return Anonymous
	}
	if subtle.ConstantTimeCompare(p.token, []byte(token)) != 1 {
		return Anonymous
	}
	return Principal{Subject: "admin", Role: RoleAdmin}
}

// BearerToken извлекает токен из заголовка Authorization.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext возвращает автора запроса; без него запрос считается анонимным.
func FromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(ctxKey{}).(Principal); ok {
		return p
	}
	return Anonymous
}
