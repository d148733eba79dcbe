// Package content loads blog posts from a directory or an object store.
package content

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stockie/backend/internal/domain/blog"
)

var delimiter = []byte("---")

// ParsePost splits a markdown document into YAML frontmatter and body.
// A document without a leading "---" line has empty frontmatter.
// The slug falls back to the file name without its extension.
func ParsePost(name string, data []byte) (*blog.Post, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	var fm blog.Frontmatter
	body := data

	if head, rest, ok := splitFrontmatter(data); ok {
		if err := yaml.Unmarshal(head, &fm); err != nil {
			return nil, fmt.Errorf("parse frontmatter of %s: %w", name, err)
		}
		body = rest
	}

	if fm.Slug == "" {
		base := path.Base(strings.ReplaceAll(name, "\\", "/"))
		fm.Slug = strings.TrimSuffix(base, path.Ext(base))
	}
	return blog.NewPost(fm, string(body)), nil
}

func splitFrontmatter(data []byte) (head, body []byte, ok bool) {
	first, rest, found := bytes.Cut(data, []byte("\n"))
	if !found || !bytes.Equal(bytes.TrimSpace(first), delimiter) {
		return nil, nil, false
	}

	for offset := 0; offset <= len(rest); {
		line, next, more := bytes.Cut(rest[offset:], []byte("\n"))
		if bytes.Equal(bytes.TrimSpace(line), delimiter) {
			return rest[:offset], next, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return nil, nil, false
}

// isPostFile reports whether name has a markdown extension
func isPostFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".mdx":
		return true
	}
	return false
}
