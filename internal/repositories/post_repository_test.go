package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/anonto42/yatube/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListPostsOrderedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "leo")

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, author, nil, "oldest", base)
	createTestPost(t, db, author, nil, "middle", base.Add(time.Hour))
	createTestPost(t, db, author, nil, "newest", base.Add(2*time.Hour))

	posts, err := repo.ListPosts(0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Text)
	assert.Equal(t, "middle", posts[1].Text)
	assert.Equal(t, "oldest", posts[2].Text)
}

func TestListPostsPageSizeAndRemainder(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "anna")

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		createTestPost(t, db, author, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	firstPage, err := repo.ListPosts(0, 10)
	require.NoError(t, err)
	assert.Len(t, firstPage, 10)

	secondPage, err := repo.ListPosts(10, 10)
	require.NoError(t, err)
	assert.Len(t, secondPage, 3)

	total, err := repo.CountPosts()
	require.NoError(t, err)
	assert.EqualValues(t, 13, total)
}

func TestListPostsPreloadsAuthorAndGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "mira")
	group := createTestGroup(t, db, "Cats", "cats")

	createTestPost(t, db, author, group, "meow", time.Now())

	posts, err := repo.ListPosts(0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "mira", posts[0].Author.Username)
	require.NotNil(t, posts[0].Group)
	assert.Equal(t, "cats", posts[0].Group.Slug)
}

func TestListPostsByGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "ben")
	cats := createTestGroup(t, db, "Cats", "cats")
	dogs := createTestGroup(t, db, "Dogs", "dogs")

	now := time.Now()
	createTestPost(t, db, author, cats, "cat post", now)
	createTestPost(t, db, author, dogs, "dog post", now)
	createTestPost(t, db, author, nil, "no group", now)

	posts, err := repo.ListPostsByGroup(cats.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "cat post", posts[0].Text)

	count, err := repo.CountPostsByGroup(cats.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListPostsByAuthors(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	a := createTestUser(t, db, "a")
	b := createTestUser(t, db, "b")
	c := createTestUser(t, db, "c")

	now := time.Now()
	createTestPost(t, db, a, nil, "by a", now)
	createTestPost(t, db, b, nil, "by b", now)
	createTestPost(t, db, c, nil, "by c", now)

	posts, err := repo.ListPostsByAuthors([]uint{a.ID, b.ID}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// Following no one yields an empty page, not everything
	posts, err = repo.ListPostsByAuthors(nil, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestDeletePostRemovesComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "dana")
	post := createTestPost(t, db, author, nil, "to delete", time.Now())

	comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "first"}
	require.NoError(t, db.Create(comment).Error)

	require.NoError(t, repo.DeletePost(post.ID))

	_, err := repo.GetPostByID(post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count)
}
