package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticTokenProvider(t *testing.T) {
	p := NewStaticTokenProvider("s3cret")
	ctx := context.Background()

	assert.True(t, p.Authenticate(ctx, "s3cret").IsAdmin())
	assert.False(t, p.Authenticate(ctx, "wrong").IsAdmin())
	assert.False(t, p.Authenticate(ctx, "").IsAdmin())
}

func TestStaticTokenProvider_EmptyConfiguredToken(t *testing.T) {
	p := NewStaticTokenProvider("")
	assert.Equal(t, Anonymous, p.Authenticate(context.Background(), ""))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer abc "))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken(""))
}

func TestPrincipalContext(t *testing.T) {
	assert.Equal(t, Anonymous, FromContext(context.Background()))

	admin := Principal{Subject: "admin", Role: RoleAdmin}
	ctx := WithPrincipal(context.Background(), admin)
	assert.Equal(t, admin, FromContext(ctx))
}
