package blog

import (
	"context"
	"encoding/xml"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Sitemap change frequencies
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// URLSet is the root element of a sitemap document
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one sitemap entry
type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Sitemap lists the static pages followed by one entry per post.
// Posts use their publish date as lastmod; everything else uses now.
func (s *Service) Sitemap(ctx context.Context) (*URLSet, error) {
	posts, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	stamp := now.Format(time.RFC3339)

	set := &URLSet{
		Xmlns: sitemapNamespace,
		URLs: []SitemapURL{
			{Loc: s.baseURL, LastMod: stamp, ChangeFreq: ChangeDaily, Priority: 1},
			{Loc: s.baseURL + "/blogs", LastMod: stamp, ChangeFreq: ChangeWeekly, Priority: 0.9},
			{Loc: s.baseURL + "/screener", LastMod: stamp, ChangeFreq: ChangeDaily, Priority: 0.9},
		},
	}
	for _, p := range posts {
		lastMod := stamp
		if !p.Published.IsZero() {
			lastMod = p.Published.Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        s.baseURL + "/blogs/" + p.Frontmatter.Slug,
			LastMod:    lastMod,
			ChangeFreq: ChangeMonthly,
			Priority:   0.8,
		})
	}
	return set, nil
}

// SitemapXML renders Sitemap as an XML document
func (s *Service) SitemapXML(ctx context.Context) ([]byte, error) {
	set, err := s.Sitemap(ctx)
	if err != nil {
		return nil, err
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
