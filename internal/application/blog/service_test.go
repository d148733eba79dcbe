package blog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockie/backend/internal/domain/blog"
	"github.com/stockie/backend/internal/domain/shared"
)

// MockBlogRepository is a mock implementation of blog.Repository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) All(ctx context.Context) ([]*blog.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.Post), args.Error(1)
}

func (m *MockBlogRepository) FindBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Post), args.Error(1)
}

func samplePosts() []*blog.Post {
	return []*blog.Post{
		blog.NewPost(blog.Frontmatter{Title: "Moats", Slug: "moats", Tags: []string{"valuation", "strategy"}, PublishedAt: "2024-06-01"}, "body"),
		blog.NewPost(blog.Frontmatter{Title: "Yield", Slug: "dividend-yield", Tags: []string{"income", "valuation"}, PublishedAt: "2024-03-01"}, "body"),
		blog.NewPost(blog.Frontmatter{Title: "Draft", Slug: "undated"}, "body"),
	}
}

func TestService_GetAllBlogs(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		tag   string
		slugs []string
	}{
		{"no tag returns everything", "", []string{"moats", "dividend-yield", "undated"}},
		{"filters by tag", "income", []string{"dividend-yield"}},
		{"tag is trimmed", " valuation ", []string{"moats", "dividend-yield"}},
		{"unknown tag", "crypto", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBlogRepository)
			repo.On("All", ctx).Return(samplePosts(), nil)

			metas, err := NewService(repo, "https://thestockie.com").GetAllBlogs(ctx, tt.tag)

			require.NoError(t, err)
			slugs := make([]string, 0, len(metas))
			for _, m := range metas {
				slugs = append(slugs, m.Frontmatter.Slug)
				assert.Equal(t, "1 min read", m.ReadingTime)
			}
			assert.Equal(t, tt.slugs, slugs)
		})
	}

	t.Run("propagates repository error", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("All", ctx).Return(nil, errors.New("boom"))

		_, err := NewService(repo, "").GetAllBlogs(ctx, "")
		assert.Error(t, err)
	})
}

func TestService_GetBlogBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("returns post", func(t *testing.T) {
		repo := new(MockBlogRepository)
		want := samplePosts()[0]
		repo.On("FindBySlug", ctx, "moats").Return(want, nil)

		got, err := NewService(repo, "").GetBlogBySlug(ctx, "moats")

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("malformed slug is not found without lookup", func(t *testing.T) {
		repo := new(MockBlogRepository)

		_, err := NewService(repo, "").GetBlogBySlug(ctx, "../secrets")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything)
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("FindBySlug", ctx, "gone").Return(nil, shared.ErrNotFound)

		_, err := NewService(repo, "").GetBlogBySlug(ctx, "gone")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_GetAllTags(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	repo.On("All", ctx).Return(samplePosts(), nil)

	tags, err := NewService(repo, "").GetAllTags(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"income", "strategy", "valuation"}, tags)
}

func TestService_GetAllBlogSlugs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	repo.On("All", ctx).Return(samplePosts(), nil)

	slugs, err := NewService(repo, "").GetAllBlogSlugs(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"moats", "dividend-yield", "undated"}, slugs)
}

func TestService_Sitemap(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	repo.On("All", ctx).Return(samplePosts(), nil)

	svc := NewService(repo, "https://thestockie.com/")
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	set, err := svc.Sitemap(ctx)
	require.NoError(t, err)
	require.Len(t, set.URLs, 6)

	assert.Equal(t, SitemapURL{Loc: "https://thestockie.com", LastMod: "2025-01-02T03:04:05Z", ChangeFreq: ChangeDaily, Priority: 1}, set.URLs[0])
	assert.Equal(t, "https://thestockie.com/blogs", set.URLs[1].Loc)
	assert.Equal(t, ChangeWeekly, set.URLs[1].ChangeFreq)
	assert.Equal(t, "https://thestockie.com/screener", set.URLs[2].Loc)
	assert.Equal(t, SitemapURL{Loc: "https://thestockie.com/blogs/moats", LastMod: "2024-06-01T00:00:00Z", ChangeFreq: ChangeMonthly, Priority: 0.8}, set.URLs[3])
	assert.Equal(t, "2025-01-02T03:04:05Z", set.URLs[5].LastMod, "undated posts fall back to now")
}

func TestService_SitemapXML(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	repo.On("All", ctx).Return([]*blog.Post{}, nil)

	body, err := NewService(repo, "https://thestockie.com").SitemapXML(ctx)

	require.NoError(t, err)
	doc := string(body)
	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, doc, "<loc>https://thestockie.com/screener</loc>")
	assert.Contains(t, doc, "<priority>0.9</priority>")
	assert.Equal(t, 3, strings.Count(doc, "<url>"))
}
