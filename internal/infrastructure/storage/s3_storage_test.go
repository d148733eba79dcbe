package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/stockie/backend/internal/infrastructure/config"
)

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(ctx, &config.StorageConfig{AccessKey: "k", SecretKey: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("access key without secret returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(ctx, &config.StorageConfig{Bucket: "b", AccessKey: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set together")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3ObjectStorage(ctx, &config.StorageConfig{
			Bucket:       "content",
			AccessKey:    "k",
			SecretKey:    "s",
			Endpoint:     "localhost:9000",
			UsePathStyle: true,
		}, WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)
		assert.Equal(t, "content", s.GetBucket())
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		useSSL   bool
		want     string
	}{
		{"", false, ""},
		{"localhost:9000", false, "http://localhost:9000"},
		{"minio.internal", true, "https://minio.internal"},
		{"https://s3.example.com", false, "https://s3.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			got, err := normalizeEndpoint(tt.endpoint, tt.useSSL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// fakeS3 serves a path-style bucket with two pages of listing results
func fakeS3(t *testing.T, objects map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/content")
		if path == "" || path == "/" {
			assert.Equal(t, "2", r.URL.Query().Get("list-type"))
			w.Header().Set("Content-Type", "application/xml")
			truncated := r.URL.Query().Get("continuation-token") == ""
			var b strings.Builder
			b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
			b.WriteString(`<Name>content</Name><Prefix>blogs/</Prefix>`)
			key := "blogs/b.mdx"
			if truncated {
				key = "blogs/a.mdx"
				b.WriteString(`<IsTruncated>true</IsTruncated><NextContinuationToken>next</NextContinuationToken>`)
			} else {
				b.WriteString(`<IsTruncated>false</IsTruncated>`)
			}
			fmt.Fprintf(&b, `<Contents><Key>%s</Key><Size>%d</Size><ETag>"etag-%s"</ETag><LastModified>2025-01-02T03:04:05.000Z</LastModified></Contents>`,
				key, len(objects[key]), key)
			b.WriteString(`</ListBucketResult>`)
			_, _ = w.Write([]byte(b.String()))
			return
		}

		body, ok := objects[strings.TrimPrefix(path, "/")]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
}

func newFakeStorage(t *testing.T, srv *httptest.Server) *S3ObjectStorage {
	t.Helper()
	s, err := NewS3ObjectStorage(context.Background(), &config.StorageConfig{
		Bucket:       "content",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Endpoint:     srv.URL,
		UsePathStyle: true,
	})
	require.NoError(t, err)
	return s
}

func TestS3ObjectStorage_List(t *testing.T) {
	srv := fakeS3(t, map[string]string{"blogs/a.mdx": "aaa", "blogs/b.mdx": "bbbbb"})
	defer srv.Close()

	objects, err := newFakeStorage(t, srv).List(context.Background(), "blogs/")

	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "blogs/a.mdx", objects[0].Key)
	assert.Equal(t, int64(3), objects[0].Size)
	assert.Equal(t, "etag-blogs/a.mdx", objects[0].ETag)
	assert.Equal(t, 2025, objects[0].LastModified.Year())
	assert.Equal(t, "blogs/b.mdx", objects[1].Key)
}

func TestS3ObjectStorage_Get(t *testing.T) {
	srv := fakeS3(t, map[string]string{"blogs/a.mdx": "---\ntitle: A\n---\nbody"})
	defer srv.Close()
	s := newFakeStorage(t, srv)

	t.Run("returns object body", func(t *testing.T) {
		data, err := s.Get(context.Background(), "blogs/a.mdx")
		require.NoError(t, err)
		assert.Equal(t, "---\ntitle: A\n---\nbody", string(data))
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(context.Background(), "blogs/missing.mdx")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := s.Get(context.Background(), "")
		assert.Error(t, err)
	})
}
