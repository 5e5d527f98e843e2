package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/viewtube/config"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

var testJWT = config.JWTConfig{Secret: "test-secret", ExpireMin: 60}

func TestRegister_NormalizesUsername(t *testing.T) {
	e := newTestEnv(t)
	svc := NewUserService(e.users, testJWT)

	user, err := svc.Register(ctxT(), "  Alice  ", "Alice@Example.com", "secret1", "Alice A")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password) // 存 hash，绝不存明文

	// 大小写不同视为同名
	_, err = svc.Register(ctxT(), "ALICE", "other@example.com", "secret1", "")
	assert.ErrorIs(t, err, errs.Conflict(""))
}

func TestRegister_WeakPassword(t *testing.T) {
	e := newTestEnv(t)
	svc := NewUserService(e.users, testJWT)

	_, err := svc.Register(ctxT(), "bob", "bob@example.com", "12345", "")
	assert.ErrorIs(t, err, errs.Validation(""))
}

func TestLogin_IssuesTokenForCaller(t *testing.T) {
	e := newTestEnv(t)
	svc := NewUserService(e.users, testJWT)
	user, err := svc.Register(ctxT(), "alice", "alice@example.com", "secret1", "")
	require.NoError(t, err)

	signed, got, err := svc.Login(ctxT(), "Alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWT.Secret), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub)
}

func TestLogin_Failures(t *testing.T) {
	e := newTestEnv(t)
	svc := NewUserService(e.users, testJWT)
	_, err := svc.Register(ctxT(), "alice", "alice@example.com", "secret1", "")
	require.NoError(t, err)

	_, _, err = svc.Login(ctxT(), "alice", "wrong-password")
	assert.ErrorIs(t, err, errs.Unauthenticated())

	_, _, err = svc.Login(ctxT(), "nobody", "secret1")
	assert.ErrorIs(t, err, errs.NotFound("user"))
}
