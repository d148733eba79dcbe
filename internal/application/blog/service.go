// Package blog serves the content blog: listings, single posts, tags and
// the sitemap that indexes them.
package blog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/stockie/backend/internal/domain/blog"
	"github.com/stockie/backend/internal/domain/shared"
)

// Service handles blog read operations
type Service struct {
	repo    blog.Repository
	baseURL string
	now     func() time.Time
}

// NewService creates a new blog Service. baseURL is the public site root
// used for sitemap locations.
func NewService(repo blog.Repository, baseURL string) *Service {
	return &Service{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GetAllBlogs lists posts newest first, optionally restricted to one tag
func (s *Service) GetAllBlogs(ctx context.Context, tag string) ([]blog.Meta, error) {
	posts, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	tag = strings.TrimSpace(tag)
	metas := make([]blog.Meta, 0, len(posts))
	for _, p := range posts {
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		metas = append(metas, p.Meta())
	}
	return metas, nil
}

// GetBlogBySlug returns one post with its body
func (s *Service) GetBlogBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if !blog.ValidSlug(slug) {
		return nil, shared.ErrNotFound.WithMessage("blog post not found")
	}
	return s.repo.FindBySlug(ctx, slug)
}

// GetAllTags returns every tag in use, sorted and de-duplicated
func (s *Service) GetAllTags(ctx context.Context) ([]string, error) {
	posts, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, p := range posts {
		for _, t := range p.Frontmatter.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// GetAllBlogSlugs returns the slug of every post, newest first
func (s *Service) GetAllBlogSlugs(ctx context.Context) ([]string, error) {
	posts, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(posts))
	for _, p := range posts {
		slugs = append(slugs, p.Frontmatter.Slug)
	}
	return slugs, nil
}
