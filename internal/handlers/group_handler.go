package handlers

import (
	"net/http"

	"github.com/anonto42/yatube/backend/internal/models"
	"github.com/anonto42/yatube/backend/internal/pagination"
	"github.com/anonto42/yatube/backend/internal/repositories"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// maxSlugLen matches the slug column width.
const maxSlugLen = 20

// GroupHandler handles HTTP requests related to groups
type GroupHandler struct {
	groupRepository repositories.GroupRepository
	postRepository  repositories.PostRepository
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupRepo repositories.GroupRepository, postRepo repositories.PostRepository) *GroupHandler {
	return &GroupHandler{
		groupRepository: groupRepo,
		postRepository:  postRepo,
	}
}

// RegisterGroupRoutes registers group routes requiring authentication
func (h *GroupHandler) RegisterGroupRoutes(g *echo.Group) {
	g.POST("/groups", h.CreateGroup)
}

// RegisterPublicGroupRoutes registers read-only group routes
func (h *GroupHandler) RegisterPublicGroupRoutes(g *echo.Group) {
	g.GET("/groups", h.GetGroups)
	g.GET("/groups/:slug", h.GetGroup)
	g.GET("/groups/:slug/posts", h.GetGroupPosts)
}

// CreateGroup creates a new group. When no slug is supplied one is
// derived from the title and truncated to the column width.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	groupSlug := req.Slug
	if groupSlug == "" {
		groupSlug = slug.Make(req.Title)
		if len(groupSlug) > maxSlugLen {
			groupSlug = groupSlug[:maxSlugLen]
		}
	}

	exists, err := h.groupRepository.SlugExists(groupSlug)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if exists {
		return echo.NewHTTPError(http.StatusConflict, "Group with this slug already exists")
	}

	group := &models.Group{
		Title:       req.Title,
		Slug:        groupSlug,
		Description: req.Description,
	}

	if err := h.groupRepository.CreateGroup(group); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, group)
}

// GetGroups retrieves all groups
func (h *GroupHandler) GetGroups(c echo.Context) error {
	groups, err := h.groupRepository.GetGroups()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, groups)
}

// GetGroup retrieves a group by slug
func (h *GroupHandler) GetGroup(c echo.Context) error {
	group, err := h.lookupGroup(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}

// GetGroupPosts returns the paginated feed of a group's posts
func (h *GroupHandler) GetGroupPosts(c echo.Context) error {
	group, err := h.lookupGroup(c)
	if err != nil {
		return err
	}

	page := pagination.PageParam(c)

	posts, err := h.postRepository.ListPostsByGroup(group.ID, pagination.Offset(page), pagination.PostsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	total, err := h.postRepository.CountPostsByGroup(group.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"group": group, "posts": posts},
		"meta":    pagination.NewMeta(page, total),
	})
}

func (h *GroupHandler) lookupGroup(c echo.Context) (*models.Group, error) {
	group, err := h.groupRepository.GetGroupBySlug(c.Param("slug"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Group not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return group, nil
}
