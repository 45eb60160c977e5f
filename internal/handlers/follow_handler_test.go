package handlers

import (
	"net/http"
	"testing"

	"github.com/anonto42/yatube/backend/internal/models"
	"github.com/anonto42/yatube/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFollowHandler(db *gorm.DB) *FollowHandler {
	return NewFollowHandler(
		repositories.NewPostgresFollowRepository(db),
		repositories.NewPostgresUserRepository(db),
	)
}

func followCount(t *testing.T, db *gorm.DB, userID, authorID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error)
	return count
}

func TestFollowThenUnfollow(t *testing.T) {
	db := newTestDB(t)
	h := newFollowHandler(db)
	e := newEcho()
	reader := createUser(t, db, "reader")
	createUser(t, db, "author")

	c, rec := newJSONContext(e, http.MethodPost, "/", "")
	c.SetPath("/api/v1/users/:username/follow")
	c.SetParamNames("username")
	c.SetParamValues("author")
	asUser(c, reader)

	require.NoError(t, h.FollowAuthor(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	author, err := repositories.NewPostgresUserRepository(db).GetUserByUsername("author")
	require.NoError(t, err)
	assert.EqualValues(t, 1, followCount(t, db, reader.ID, author.ID))

	c, rec = newJSONContext(e, http.MethodDelete, "/", "")
	c.SetPath("/api/v1/users/:username/follow")
	c.SetParamNames("username")
	c.SetParamValues("author")
	asUser(c, reader)

	require.NoError(t, h.UnfollowAuthor(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, followCount(t, db, reader.ID, author.ID))
}

func TestFollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	h := newFollowHandler(db)
	e := newEcho()
	reader := createUser(t, db, "reader")
	author := createUser(t, db, "author")

	for i := 0; i < 2; i++ {
		c, rec := newJSONContext(e, http.MethodPost, "/", "")
		c.SetPath("/api/v1/users/:username/follow")
		c.SetParamNames("username")
		c.SetParamValues("author")
		asUser(c, reader)

		require.NoError(t, h.FollowAuthor(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.EqualValues(t, 1, followCount(t, db, reader.ID, author.ID))
}

func TestUnfollowWithoutRelationship(t *testing.T) {
	db := newTestDB(t)
	h := newFollowHandler(db)
	e := newEcho()
	reader := createUser(t, db, "reader")
	createUser(t, db, "author")

	c, rec := newJSONContext(e, http.MethodDelete, "/", "")
	c.SetPath("/api/v1/users/:username/follow")
	c.SetParamNames("username")
	c.SetParamValues("author")
	asUser(c, reader)

	require.NoError(t, h.UnfollowAuthor(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCannotFollowYourself(t *testing.T) {
	db := newTestDB(t)
	h := newFollowHandler(db)
	e := newEcho()
	reader := createUser(t, db, "reader")

	c, _ := newJSONContext(e, http.MethodPost, "/", "")
	c.SetPath("/api/v1/users/:username/follow")
	c.SetParamNames("username")
	c.SetParamValues("reader")
	asUser(c, reader)

	err := h.FollowAuthor(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	assert.Zero(t, followCount(t, db, reader.ID, reader.ID))
}

func TestFollowUnknownUser(t *testing.T) {
	db := newTestDB(t)
	h := newFollowHandler(db)
	e := newEcho()
	reader := createUser(t, db, "reader")

	c, _ := newJSONContext(e, http.MethodPost, "/", "")
	c.SetPath("/api/v1/users/:username/follow")
	c.SetParamNames("username")
	c.SetParamValues("ghost")
	asUser(c, reader)

	err := h.FollowAuthor(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}
