package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockie/backend/internal/domain/blog"
	"github.com/stockie/backend/internal/domain/shared"
	"github.com/stockie/backend/internal/interfaces/http/dto"
)

func newBlogRouter(svc BlogService) *gin.Engine {
	h := NewBlogHandler(svc)
	r := gin.New()
	r.GET("/blogs", h.GetAllBlogs)
	r.GET("/blogs/tags", h.GetAllTags)
	r.GET("/blogs/slugs", h.GetAllBlogSlugs)
	r.GET("/blogs/:slug", h.GetBlogBySlug)
	r.GET("/sitemap.xml", h.Sitemap)
	return r
}

func TestBlogHandler_GetAllBlogs(t *testing.T) {
	tests := []struct {
		name   string
		target string
		tag    string
	}{
		{"no filter", "/blogs", ""},
		{"tag filter", "/blogs?tag=valuation", "valuation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBlogService)
			svc.On("GetAllBlogs", mock.Anything, tt.tag).Return([]blog.Meta{
				{Frontmatter: blog.Frontmatter{Title: "Reading a 10-K", Slug: "reading-a-10k", Tags: []string{"valuation"}}, ReadingTime: "4 min read"},
			}, nil)

			w := get(newBlogRouter(svc), tt.target)

			assert.Equal(t, http.StatusOK, w.Code)
			items := decodeResponse(t, w).Data.([]any)
			require.Len(t, items, 1)
			assert.Equal(t, "4 min read", items[0].(map[string]any)["readingTime"])
			svc.AssertExpectations(t)
		})
	}

	t.Run("content source failure", func(t *testing.T) {
		svc := new(MockBlogService)
		svc.On("GetAllBlogs", mock.Anything, "").Return(nil, errors.New("s3: access denied"))

		w := get(newBlogRouter(svc), "/blogs")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, decodeResponse(t, w).Error.Code)
	})
}

func TestBlogHandler_GetBlogBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockBlogService)
		post := blog.NewPost(blog.Frontmatter{Title: "Moats", Slug: "moats", PublishedAt: "2024-05-01"}, "Wide moats last.")
		svc.On("GetBlogBySlug", mock.Anything, "moats").Return(post, nil)

		w := get(newBlogRouter(svc), "/blogs/moats")

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeResponse(t, w).Data.(map[string]any)
		assert.Equal(t, "Wide moats last.", data["content"])
		assert.NotContains(t, data, "Published")
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(MockBlogService)
		svc.On("GetBlogBySlug", mock.Anything, "nope").Return(nil, shared.ErrNotFound.WithMessage("blog post not found"))

		w := get(newBlogRouter(svc), "/blogs/nope")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "blog post not found", decodeResponse(t, w).Error.Message)
	})
}

func TestBlogHandler_TagsAndSlugs(t *testing.T) {
	svc := new(MockBlogService)
	svc.On("GetAllTags", mock.Anything).Return([]string{"earnings", "valuation"}, nil)
	svc.On("GetAllBlogSlugs", mock.Anything).Return([]string{}, nil)
	r := newBlogRouter(svc)

	w := get(r, "/blogs/tags")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"earnings", "valuation"}, decodeResponse(t, w).Data)

	w = get(r, "/blogs/slugs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestBlogHandler_Sitemap(t *testing.T) {
	t.Run("serves xml", func(t *testing.T) {
		svc := new(MockBlogService)
		body := []byte(`<?xml version="1.0" encoding="UTF-8"?>` + "\n<urlset></urlset>")
		svc.On("SitemapXML", mock.Anything).Return(body, nil)

		w := get(newBlogRouter(svc), "/sitemap.xml")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, string(body), w.Body.String())
	})

	t.Run("failure uses the json error envelope", func(t *testing.T) {
		svc := new(MockBlogService)
		svc.On("SitemapXML", mock.Anything).Return(nil, errors.New("boom"))

		w := get(newBlogRouter(svc), "/sitemap.xml")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, decodeResponse(t, w).Success)
	})
}
