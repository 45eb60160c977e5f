package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anonto42/yatube/backend/internal/cache"
	"github.com/anonto42/yatube/backend/internal/pagination"
	"github.com/anonto42/yatube/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles the post listings: the cached index feed and the
// per-user follow feed.
type FeedHandler struct {
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
	pageCache        *cache.PageCache
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, followRepo repositories.FollowRepository, pageCache *cache.PageCache) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		followRepository: followRepo,
		pageCache:        pageCache,
	}
}

// RegisterPublicFeedRoutes registers the index feed route
func (h *FeedHandler) RegisterPublicFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.GetIndexFeed)
}

// RegisterFeedRoutes registers feed routes requiring authentication
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/follow", h.GetFollowFeed)
}

// GetIndexFeed returns a page of all posts, newest first. Rendered pages
// are served from the cache until they expire; a post deleted in the
// meantime keeps showing until then.
func (h *FeedHandler) GetIndexFeed(c echo.Context) error {
	page := pagination.PageParam(c)
	cacheKey := strconv.Itoa(page)

	ctx := c.Request().Context()
	if body, ok := h.pageCache.Get(ctx, cacheKey); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	posts, err := h.postRepository.ListPosts(pagination.Offset(page), pagination.PostsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	total, err := h.postRepository.CountPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	body, err := json.Marshal(echo.Map{
		"success": true,
		"data":    echo.Map{"posts": posts},
		"meta":    pagination.NewMeta(page, total),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.pageCache.Set(ctx, cacheKey, body)

	return c.JSONBlob(http.StatusOK, body)
}

// GetFollowFeed returns a page of posts authored by users the requester
// follows. Never cached: the listing differs per user.
func (h *FeedHandler) GetFollowFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page := pagination.PageParam(c)

	authorIDs, err := h.followRepository.GetFollowedAuthorIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.ListPostsByAuthors(authorIDs, pagination.Offset(page), pagination.PostsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	total, err := h.postRepository.CountPostsByAuthors(authorIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": posts},
		"meta":    pagination.NewMeta(page, total),
	})
}
