package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIKeyPrincipal(t *testing.T) {
	t.Parallel()

	p := NewAPIKeyPrincipal()
	assert.Equal(t, "api-key-user", p.SubjectID)
	assert.Equal(t, "API Key User", p.DisplayName)
	assert.True(t, p.IsAPIKey)
	assert.Equal(t, "ApiUser", p.Role)

	assert.NotSame(t, p, NewAPIKeyPrincipal(), "each request gets its own principal")
}

func TestNewBearerPrincipal(t *testing.T) {
	t.Parallel()

	p := NewBearerPrincipal(&Claims{Subject: "ana@example.com", Email: "ana@example.com"})
	assert.Equal(t, "ana@example.com", p.SubjectID)
	assert.Equal(t, "ana@example.com", p.DisplayName)
	assert.False(t, p.IsAPIKey)
	assert.Empty(t, p.Role)

	p = NewBearerPrincipal(&Claims{Subject: "subject-only"})
	assert.Equal(t, "subject-only", p.DisplayName)
}

func TestPrincipalCanManage(t *testing.T) {
	t.Parallel()

	owner := NewBearerPrincipal(&Claims{Subject: "ana@example.com"})
	assert.True(t, owner.CanManage("ana@example.com"))
	assert.True(t, owner.CanManage("Ana@Example.com"))
	assert.False(t, owner.CanManage("bruno@example.com"))

	assert.True(t, NewAPIKeyPrincipal().CanManage("bruno@example.com"))

	var none *Principal
	assert.False(t, none.CanManage("ana@example.com"))
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	_, ok = PrincipalFromContext(WithPrincipal(context.Background(), nil))
	assert.False(t, ok)

	p := NewAPIKeyPrincipal()
	got, ok := PrincipalFromContext(WithPrincipal(context.Background(), p))
	require.True(t, ok)
	assert.Same(t, p, got)
}
