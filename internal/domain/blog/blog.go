// Package blog holds the content blog model: posts parsed from markdown
// files with YAML frontmatter.
package blog

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// WordsPerMinute is the reading speed used for reading-time estimates
const WordsPerMinute = 200

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Frontmatter is the metadata block at the top of a post
type Frontmatter struct {
	Title       string   `yaml:"title" json:"title"`
	Slug        string   `yaml:"slug" json:"slug"`
	Excerpt     string   `yaml:"excerpt" json:"excerpt"`
	CoverImage  string   `yaml:"coverImage" json:"coverImage"`
	Tags        []string `yaml:"tags" json:"tags"`
	PublishedAt string   `yaml:"publishedAt" json:"publishedAt"`
}

// Meta is a post without its body, as listed on the index page
type Meta struct {
	Frontmatter Frontmatter `json:"frontmatter"`
	ReadingTime string      `json:"readingTime"`
}

// Post is a fully loaded post
type Post struct {
	Frontmatter Frontmatter `json:"frontmatter"`
	Content     string      `json:"content"`
	ReadingTime string      `json:"readingTime"`

	// Published is PublishedAt parsed; zero when the date is missing or malformed
	Published time.Time `json:"-"`
}

// NewPost builds a post, deriving reading time and the publish date
func NewPost(fm Frontmatter, content string) *Post {
	if fm.Tags == nil {
		fm.Tags = []string{}
	}
	return &Post{
		Frontmatter: fm,
		Content:     content,
		ReadingTime: ReadingTimeText(content),
		Published:   ParsePublishedAt(fm.PublishedAt),
	}
}

// Meta returns the listing view of the post
func (p *Post) Meta() Meta {
	return Meta{Frontmatter: p.Frontmatter, ReadingTime: p.ReadingTime}
}

// HasTag reports whether the post is tagged with tag
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Frontmatter.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ReadingMinutes estimates reading time at WordsPerMinute, never below one minute
func ReadingMinutes(content string) int {
	words := len(strings.Fields(content))
	return max(1, int(math.Ceil(float64(words)/WordsPerMinute)))
}

// ReadingTimeText formats ReadingMinutes as "N min read"
func ReadingTimeText(content string) string {
	return fmt.Sprintf("%d min read", ReadingMinutes(content))
}

var publishedLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParsePublishedAt accepts RFC 3339 timestamps and bare dates
func ParsePublishedAt(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// ValidSlug reports whether slug is a lowercase, hyphen-separated identifier
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Repository provides read access to published posts
type Repository interface {
	// All returns every post, newest first
	All(ctx context.Context) ([]*Post, error)

	// FindBySlug returns the post for slug or shared.ErrNotFound
	FindBySlug(ctx context.Context, slug string) (*Post, error)
}
