package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/stockie/backend/internal/infrastructure/storage"
)

// Document is one raw post file
type Document struct {
	Name string
	Data []byte
}

// Source lists the raw post files currently published
type Source interface {
	Load(ctx context.Context) ([]Document, error)
}

// Watcher is implemented by sources that can push change notifications.
// Watch blocks until ctx is done.
type Watcher interface {
	Watch(ctx context.Context, changed func()) error
}

// DirSource reads posts from a local directory
type DirSource struct {
	dir      string
	debounce time.Duration
	logger   *zap.Logger
}

// DirSourceOption configures a DirSource
type DirSourceOption func(*DirSource)

// WithDirLogger sets the logger used for watch errors
func WithDirLogger(logger *zap.Logger) DirSourceOption {
	return func(s *DirSource) {
		s.logger = logger
	}
}

// WithDebounce coalesces bursts of file events into one notification
func WithDebounce(d time.Duration) DirSourceOption {
	return func(s *DirSource) {
		s.debounce = d
	}
}

// NewDirSource creates a source over dir
func NewDirSource(dir string, opts ...DirSourceOption) *DirSource {
	s := &DirSource{
		dir:      dir,
		debounce: 250 * time.Millisecond,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every markdown file in the directory, sorted by name.
// A missing directory yields no documents.
func (s *DirSource) Load(ctx context.Context) ([]Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read blog directory: %w", err)
	}

	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isPostFile(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		docs = append(docs, Document{Name: entry.Name(), Data: data})
	}
	return docs, nil
}

// Watch calls changed after markdown files in the directory are created,
// written, removed or renamed.
func (s *DirSource) Watch(ctx context.Context, changed func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	s.logger.Info("Watching blog directory", zap.String("dir", s.dir))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isPostFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			changed()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Blog watcher error", zap.Error(err))
		}
	}
}

// ObjectStore is the read side of an object storage bucket
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

type cachedObject struct {
	etag string
	data []byte
}

// S3Source reads posts stored under a bucket prefix. Objects whose ETag is
// unchanged since the previous load are not downloaded again.
type S3Source struct {
	store  ObjectStore
	prefix string

	mu    sync.Mutex
	cache map[string]cachedObject
}

// NewS3Source creates a source over the objects under prefix
func NewS3Source(store ObjectStore, prefix string) *S3Source {
	return &S3Source{
		store:  store,
		prefix: prefix,
		cache:  make(map[string]cachedObject),
	}
}

// Load lists the prefix and returns every markdown object, sorted by key
func (s *S3Source) Load(ctx context.Context) ([]Document, error) {
	objects, err := s.store.List(ctx, s.prefix)
	if err != nil {
		return nil, err
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]cachedObject, len(objects))
	docs := make([]Document, 0, len(objects))
	for _, obj := range objects {
		if !isPostFile(obj.Key) {
			continue
		}
		cached, ok := s.cache[obj.Key]
		if !ok || obj.ETag == "" || cached.etag != obj.ETag {
			data, err := s.store.Get(ctx, obj.Key)
			if err != nil {
				if errors.Is(err, storage.ErrObjectNotFound) {
					continue
				}
				return nil, err
			}
			cached = cachedObject{etag: obj.ETag, data: data}
		}
		next[obj.Key] = cached
		docs = append(docs, Document{Name: obj.Key, Data: cached.data})
	}
	s.cache = next
	return docs, nil
}

var (
	_ Source  = (*DirSource)(nil)
	_ Watcher = (*DirSource)(nil)
	_ Source  = (*S3Source)(nil)
)
