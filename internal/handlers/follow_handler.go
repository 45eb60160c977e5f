package handlers

import (
	"net/http"

	"github.com/anonto42/yatube/backend/internal/models"
	"github.com/anonto42/yatube/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow routes requiring authentication
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:username/follow", h.FollowAuthor)
	g.DELETE("/users/:username/follow", h.UnfollowAuthor)
}

// RegisterPublicFollowRoutes registers read-only follow routes
func (h *FollowHandler) RegisterPublicFollowRoutes(g *echo.Group) {
	g.GET("/users/:username/followers", h.GetFollowers)
	g.GET("/users/:username/following", h.GetFollowing)
}

// FollowAuthor subscribes the current user to an author. Following
// someone twice is a no-op, following yourself is an error.
func (h *FollowHandler) FollowAuthor(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	author, err := h.lookupAuthor(c)
	if err != nil {
		return err
	}

	if currentUserID == author.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	isFollowing, err := h.followRepository.IsFollowing(currentUserID, author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !isFollowing {
		follow := &models.Follow{
			UserID:   currentUserID,
			AuthorID: author.ID,
		}
		if err := h.followRepository.CreateFollow(follow); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowAuthor removes the subscription; unfollowing someone you do
// not follow is a no-op.
func (h *FollowHandler) UnfollowAuthor(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	author, err := h.lookupAuthor(c)
	if err != nil {
		return err
	}

	isFollowing, err := h.followRepository.IsFollowing(currentUserID, author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		if err := h.followRepository.DeleteFollow(currentUserID, author.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowers lists the users following an author
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	author, err := h.lookupAuthor(c)
	if err != nil {
		return err
	}

	followers, err := h.followRepository.GetFollowers(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, followers)
}

// GetFollowing lists the authors a user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	author, err := h.lookupAuthor(c)
	if err != nil {
		return err
	}

	following, err := h.followRepository.GetFollowing(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, following)
}

func (h *FollowHandler) lookupAuthor(c echo.Context) (*models.User, error) {
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return author, nil
}
