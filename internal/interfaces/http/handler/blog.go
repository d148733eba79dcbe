package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockie/backend/internal/domain/blog"
)

// BlogService reads the content blog
type BlogService interface {
	GetAllBlogs(ctx context.Context, tag string) ([]blog.Meta, error)
	GetBlogBySlug(ctx context.Context, slug string) (*blog.Post, error)
	GetAllTags(ctx context.Context) ([]string, error)
	GetAllBlogSlugs(ctx context.Context) ([]string, error)
	SitemapXML(ctx context.Context) ([]byte, error)
}

// BlogHandler handles the /blogs endpoints and the sitemap
type BlogHandler struct {
	BaseHandler
	service BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(service BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// GetAllBlogs godoc
// @ID           getAllBlogs
// @Summary      List blog posts
// @Description  Lists post summaries newest first, optionally restricted to one tag
// @Tags         blogs
// @Produce      json
// @Param        tag query string false "Tag filter"
// @Success      200 {object} BlogListResponse
// @Failure      500 {object} ErrorResponse
// @Router       /blogs [get]
func (h *BlogHandler) GetAllBlogs(c *gin.Context) {
	metas, err := h.service.GetAllBlogs(c.Request.Context(), c.Query("tag"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, metas)
}

// GetAllTags godoc
// @ID           getAllTags
// @Summary      List blog tags
// @Tags         blogs
// @Produce      json
// @Success      200 {object} StringListResponse
// @Failure      500 {object} ErrorResponse
// @Router       /blogs/tags [get]
func (h *BlogHandler) GetAllTags(c *gin.Context) {
	tags, err := h.service.GetAllTags(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tags)
}

// GetAllBlogSlugs godoc
// @ID           getAllBlogSlugs
// @Summary      List blog slugs
// @Tags         blogs
// @Produce      json
// @Success      200 {object} StringListResponse
// @Failure      500 {object} ErrorResponse
// @Router       /blogs/slugs [get]
func (h *BlogHandler) GetAllBlogSlugs(c *gin.Context) {
	slugs, err := h.service.GetAllBlogSlugs(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, slugs)
}

// GetBlogBySlug godoc
// @ID           getBlogBySlug
// @Summary      Get a blog post
// @Tags         blogs
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} BlogPostResponse
// @Failure      404 {object} ErrorResponse
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) GetBlogBySlug(c *gin.Context) {
	post, err := h.service.GetBlogBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// Sitemap godoc
// @ID           getSitemap
// @Summary      Sitemap
// @Description  XML sitemap of the public site and every blog post
// @Tags         blogs
// @Produce      xml
// @Success      200 {string} string
// @Failure      500 {object} ErrorResponse
// @Router       /sitemap.xml [get]
func (h *BlogHandler) Sitemap(c *gin.Context) {
	body, err := h.service.SitemapXML(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
