package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadingMinutes(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty body still takes a minute", 0, 1},
		{"short post", 50, 1},
		{"exactly one minute", 200, 1},
		{"rounds up", 201, 2},
		{"long read", 1000, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			assert.Equal(t, tt.want, ReadingMinutes(content))
		})
	}
}

func TestReadingTimeText(t *testing.T) {
	assert.Equal(t, "3 min read", ReadingTimeText(strings.Repeat("stock ", 450)))
}

func TestParsePublishedAt(t *testing.T) {
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ParsePublishedAt("2024-05-01"))
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), ParsePublishedAt("2024-05-01T10:00:00+02:00"))
	assert.True(t, ParsePublishedAt("May 1st").IsZero())
	assert.True(t, ParsePublishedAt("").IsZero())
}

func TestNewPost(t *testing.T) {
	p := NewPost(Frontmatter{Title: "T", Slug: "t", PublishedAt: "2024-01-02"}, "one two three")

	assert.Equal(t, "1 min read", p.ReadingTime)
	assert.NotNil(t, p.Frontmatter.Tags)
	assert.Equal(t, 2024, p.Published.Year())
	assert.Equal(t, Meta{Frontmatter: p.Frontmatter, ReadingTime: "1 min read"}, p.Meta())
}

func TestPost_HasTag(t *testing.T) {
	p := NewPost(Frontmatter{Tags: []string{"valuation", "dividends"}}, "")
	assert.True(t, p.HasTag("dividends"))
	assert.False(t, p.HasTag("Dividends"))
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("how-to-read-a-balance-sheet"))
	assert.True(t, ValidSlug("q3-2024"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("../etc/passwd"))
	assert.False(t, ValidSlug("Upper-Case"))
	assert.False(t, ValidSlug("trailing-"))
}
