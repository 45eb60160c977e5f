package handlers

import (
	"net/http"
	"testing"

	"github.com/anonto42/yatube/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupThenSignIn(t *testing.T) {
	db := newTestDB(t)
	h := NewAuthHandler(repositories.NewPostgresUserRepository(db))
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/signup",
		`{"username":"newbie","email":"newbie@example.com","password":"longenough"}`)
	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)

	c, rec = newJSONContext(e, http.MethodPost, "/api/v1/auth/signin",
		`{"email":"newbie@example.com","password":"longenough"}`)
	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
}

func TestSignInWrongPassword(t *testing.T) {
	db := newTestDB(t)
	h := NewAuthHandler(repositories.NewPostgresUserRepository(db))
	e := newEcho()

	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/auth/signup",
		`{"username":"newbie","email":"newbie@example.com","password":"longenough"}`)
	require.NoError(t, h.Signup(c))

	c, _ = newJSONContext(e, http.MethodPost, "/api/v1/auth/signin",
		`{"email":"newbie@example.com","password":"wrongpassword"}`)
	err := h.SignIn(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpStatus(t, err))
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	h := NewAuthHandler(repositories.NewPostgresUserRepository(db))
	e := newEcho()

	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/auth/signup",
		`{"username":"first","email":"dup@example.com","password":"longenough"}`)
	require.NoError(t, h.Signup(c))

	c, _ = newJSONContext(e, http.MethodPost, "/api/v1/auth/signup",
		`{"username":"second","email":"dup@example.com","password":"longenough"}`)
	err := h.Signup(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
}
