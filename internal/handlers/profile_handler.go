package handlers

import (
	"net/http"

	"github.com/anonto42/yatube/backend/internal/models"
	"github.com/anonto42/yatube/backend/internal/pagination"
	"github.com/anonto42/yatube/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ProfileHandler handles author profile HTTP requests
type ProfileHandler struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepository:   userRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterProfileRoutes registers profile routes. They are public but
// honor an optional bearer token for the following flag.
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/:username", h.GetProfile)
	g.GET("/users/:username/posts", h.GetProfilePosts)
}

// GetProfile returns an author profile with their post count and whether
// the current viewer follows them. Anonymous viewers never follow anyone.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	author, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	totalPosts, err := h.postRepository.CountPostsByAuthor(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	following := false
	if viewerID := getUserIDFromContext(c); viewerID != 0 {
		following, err = h.followRepository.IsFollowing(viewerID, author.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"author":      author,
		"total_posts": totalPosts,
		"following":   following,
	})
}

// GetProfilePosts returns the paginated feed of an author's posts
func (h *ProfileHandler) GetProfilePosts(c echo.Context) error {
	author, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	page := pagination.PageParam(c)

	posts, err := h.postRepository.ListPostsByAuthor(author.ID, pagination.Offset(page), pagination.PostsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	total, err := h.postRepository.CountPostsByAuthor(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"author": author, "posts": posts},
		"meta":    pagination.NewMeta(page, total),
	})
}

func (h *ProfileHandler) lookupUser(c echo.Context) (*models.User, error) {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return user, nil
}
