package content

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stockie/backend/internal/domain/blog"
	"github.com/stockie/backend/internal/domain/shared"
)

// Library keeps an in-memory snapshot of the posts provided by a Source
// and implements blog.Repository over it.
type Library struct {
	source Source
	logger *zap.Logger

	mu     sync.RWMutex
	posts  []*blog.Post
	bySlug map[string]*blog.Post
	loaded time.Time
}

// LibraryOption configures a Library
type LibraryOption func(*Library)

// WithLibraryLogger sets the logger
func WithLibraryLogger(logger *zap.Logger) LibraryOption {
	return func(l *Library) {
		l.logger = logger
	}
}

// NewLibrary creates an empty library; call Reload to populate it
func NewLibrary(source Source, opts ...LibraryOption) *Library {
	l := &Library{
		source: source,
		logger: zap.NewNop(),
		bySlug: make(map[string]*blog.Post),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Reload replaces the snapshot with the source's current documents.
// Documents that fail to parse are skipped; a failing source keeps the
// previous snapshot.
func (l *Library) Reload(ctx context.Context) error {
	docs, err := l.source.Load(ctx)
	if err != nil {
		return err
	}

	posts := make([]*blog.Post, 0, len(docs))
	bySlug := make(map[string]*blog.Post, len(docs))
	for _, doc := range docs {
		post, err := ParsePost(doc.Name, doc.Data)
		if err != nil {
			l.logger.Warn("Skipping unparseable blog post", zap.String("file", doc.Name), zap.Error(err))
			continue
		}
		slug := post.Frontmatter.Slug
		if _, dup := bySlug[slug]; dup {
			l.logger.Warn("Skipping blog post with duplicate slug", zap.String("file", doc.Name), zap.String("slug", slug))
			continue
		}
		bySlug[slug] = post
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].Published, posts[j].Published
		if !a.Equal(b) {
			return a.After(b)
		}
		return posts[i].Frontmatter.Slug < posts[j].Frontmatter.Slug
	})

	l.mu.Lock()
	l.posts = posts
	l.bySlug = bySlug
	l.loaded = time.Now()
	l.mu.Unlock()

	l.logger.Info("Blog library loaded", zap.Int("posts", len(posts)))
	return nil
}

// Run keeps the snapshot current until ctx is done. Sources implementing
// Watcher reload on change notifications; others are polled every interval.
// A non-positive interval disables polling.
func (l *Library) Run(ctx context.Context, interval time.Duration) {
	reload := func() {
		if err := l.Reload(ctx); err != nil && ctx.Err() == nil {
			l.logger.Warn("Blog reload failed", zap.Error(err))
		}
	}

	if w, ok := l.source.(Watcher); ok {
		if err := w.Watch(ctx, reload); err != nil {
			l.logger.Warn("Blog watcher stopped", zap.Error(err))
		}
		return
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reload()
		}
	}
}

// All returns every post, newest first
func (l *Library) All(ctx context.Context) ([]*blog.Post, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*blog.Post, len(l.posts))
	copy(out, l.posts)
	return out, nil
}

// FindBySlug returns the post for slug or shared.ErrNotFound
func (l *Library) FindBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	post, ok := l.bySlug[slug]
	if !ok {
		return nil, shared.ErrNotFound.WithMessage("blog post not found")
	}
	return post, nil
}

// LoadedAt reports when the snapshot was last replaced
func (l *Library) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

var _ blog.Repository = (*Library)(nil)
