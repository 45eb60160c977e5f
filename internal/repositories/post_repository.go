package repositories

import (
	"github.com/anonto42/yatube/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. All
// listings are ordered newest-first and sliced by offset/limit.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	ListPosts(offset, limit int) ([]models.Post, error)
	ListPostsByGroup(groupID uint, offset, limit int) ([]models.Post, error)
	ListPostsByAuthor(authorID uint, offset, limit int) ([]models.Post, error)
	ListPostsByAuthors(authorIDs []uint, offset, limit int) ([]models.Post, error)
	CountPosts() (int64, error)
	CountPostsByGroup(groupID uint) (int64, error)
	CountPostsByAuthor(authorID uint) (int64, error)
	CountPostsByAuthors(authorIDs []uint) (int64, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// listing preloads author and group so feed pages need a single query.
// The id tiebreak keeps ordering stable for posts created in the same
// instant.
func (r *PostgresPostRepository) listing() *gorm.DB {
	return r.db.Preload("Author").Preload("Group").Order("created_at DESC, id DESC")
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its author and group
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts retrieves a page of all posts, newest first
func (r *PostgresPostRepository) ListPosts(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.listing().Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// ListPostsByGroup retrieves a page of posts in a group
func (r *PostgresPostRepository) ListPostsByGroup(groupID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.listing().Where("group_id = ?", groupID).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// ListPostsByAuthor retrieves a page of posts by a single author
func (r *PostgresPostRepository) ListPostsByAuthor(authorID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.listing().Where("author_id = ?", authorID).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// ListPostsByAuthors retrieves a page of posts by any of the given
// authors; used for the follow feed. An empty author set yields an empty
// page rather than a full scan.
func (r *PostgresPostRepository) ListPostsByAuthors(authorIDs []uint, offset, limit int) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := r.listing().Where("author_id IN ?", authorIDs).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountPosts returns the total number of posts
func (r *PostgresPostRepository) CountPosts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// CountPostsByGroup returns the number of posts in a group
func (r *PostgresPostRepository) CountPostsByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// CountPostsByAuthor returns the number of posts by an author
func (r *PostgresPostRepository) CountPostsByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// CountPostsByAuthors returns the number of posts by any of the given authors
func (r *PostgresPostRepository) CountPostsByAuthors(authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs).Count(&count).Error
	return count, err
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post and its comments in one transaction
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
