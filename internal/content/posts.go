// Package content loads blog post metadata from Markdown front matter.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoFrontMatter is returned for a post file that does not open with a
// "---" fenced YAML block.
var ErrNoFrontMatter = errors.New("missing front matter")

// ErrDuplicateSlug is returned when two files map to the same post URL, as
// foo.md and foo.mdx do.
var ErrDuplicateSlug = errors.New("duplicate post slug")

var fence = []byte("---")

// Post is the metadata of a single article.
type Post struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Published time.Time `json:"published"`
	Synopsis  string    `json:"synopsis"`
	Image     string    `json:"image,omitempty"`
	ImageSize int64     `json:"imageSize,omitempty"`
	Tags      []string  `json:"tags"`
	Preview   bool      `json:"-"`
}

type frontMatter struct {
	Title     string   `yaml:"title"`
	Author    string   `yaml:"author"`
	Published string   `yaml:"published"`
	Synopsis  string   `yaml:"synopsis"`
	Image     string   `yaml:"image"`
	ImageSize int64    `yaml:"imageSize"`
	Tags      []string `yaml:"tags"`
	Preview   bool     `yaml:"preview"`
}

// Load reads every .md and .mdx file directly inside dir. File names must be
// valid slugs. Posts marked preview are left out; the rest are sorted newest
// first.
func Load(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var posts []Post
	seen := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !isPostFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		slug := slugOf(e.Name())
		if err := ValidateSlug(slug); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if prev, ok := seen[slug]; ok {
			return nil, fmt.Errorf("%s and %s: %w %q", prev, e.Name(), ErrDuplicateSlug, slug)
		}
		seen[slug] = e.Name()
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		p, err := Parse(slug, data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if p.Preview {
			continue
		}
		posts = append(posts, p)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Published.Equal(posts[j].Published) {
			return posts[i].URL < posts[j].URL
		}
		return posts[i].Published.After(posts[j].Published)
	})
	return posts, nil
}

// Parse builds a Post from a file's contents. slug becomes the last URL segment.
func Parse(slug string, data []byte) (Post, error) {
	raw, err := splitFrontMatter(data)
	if err != nil {
		return Post{}, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(raw, &fm); err != nil {
		return Post{}, fmt.Errorf("decode front matter: %w", err)
	}
	if fm.Title == "" {
		return Post{}, fmt.Errorf("front matter: title is required")
	}

	published, err := parseDate(fm.Published)
	if err != nil {
		return Post{}, fmt.Errorf("front matter: published: %w", err)
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}
	return Post{
		URL:       "/blog/" + slug,
		Title:     fm.Title,
		Author:    fm.Author,
		Published: published,
		Synopsis:  fm.Synopsis,
		Image:     fm.Image,
		ImageSize: fm.ImageSize,
		Tags:      tags,
		Preview:   fm.Preview,
	}, nil
}

// TagCounts returns how many posts carry each tag.
func TagCounts(posts []Post) map[string]int {
	counts := make(map[string]int)
	for _, p := range posts {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}
	return counts
}

// Latest returns at most n posts from the front of an already sorted slice.
func Latest(posts []Post, n int) []Post {
	if n < len(posts) {
		return posts[:n]
	}
	return posts
}

func splitFrontMatter(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(data, fence) {
		return nil, ErrNoFrontMatter
	}
	rest := data[len(fence):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return nil, ErrNoFrontMatter
	}
	rest = rest[nl+1:]
	if bytes.HasPrefix(rest, fence) {
		return nil, nil
	}

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, ErrNoFrontMatter
	}
	return rest[:end+1], nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "January 2, 2006", "Jan 2, 2006"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

func isPostFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

func slugOf(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
