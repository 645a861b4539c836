package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writePost writes a post file with the given front matter body into dir.
func writePost(t *testing.T, dir, name, frontMatter string) {
	t.Helper()
	data := "---\n" + frontMatter + "---\n\n# Heading\n\nBody text.\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`---
title: Hello
author: Waku
published: 2024-03-05
synopsis: First post
image: /images/hello.png
imageSize: 2048
tags:
  - go
  - web
---
Body`)
	p, err := Parse("hello", data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.URL != "/blog/hello" {
		t.Errorf("URL = %q, want /blog/hello", p.URL)
	}
	if p.Title != "Hello" || p.Author != "Waku" || p.Synopsis != "First post" {
		t.Errorf("post = %+v", p)
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !p.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", p.Published, want)
	}
	if p.ImageSize != 2048 || p.Image != "/images/hello.png" {
		t.Errorf("image = %q (%d)", p.Image, p.ImageSize)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "go" || p.Tags[1] != "web" {
		t.Errorf("Tags = %v, want [go web]", p.Tags)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"no front matter": "# Just markdown\n",
		"unterminated":    "---\ntitle: x\n",
		"missing title":   "---\npublished: 2024-01-01\n---\n",
		"bad date":        "---\ntitle: x\npublished: yesterday\n---\n",
		"empty":           "---\n---\n",
	}
	for name, data := range tests {
		if _, err := Parse("x", []byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Parse("x", []byte("plain")); !errors.Is(err, ErrNoFrontMatter) {
		t.Errorf("err = %v, want ErrNoFrontMatter", err)
	}
}

func TestLoad_FiltersPreviewAndSorts(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "old.md", "title: Old\npublished: 2023-01-01\ntags: [go]\n")
	writePost(t, dir, "new.mdx", "title: New\npublished: 2024-06-01\ntags: [go, rust]\n")
	writePost(t, dir, "draft.md", "title: Draft\npublished: 2025-01-01\npreview: true\n")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	posts, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	for _, p := range posts {
		if p.Preview {
			t.Errorf("preview post %q included", p.Title)
		}
	}
	if posts[0].Title != "New" || posts[1].Title != "Old" {
		t.Errorf("order = %q, %q; want New, Old", posts[0].Title, posts[1].Title)
	}
}

func TestTagCounts(t *testing.T) {
	posts := []Post{
		{Tags: []string{"go", "web"}},
		{Tags: []string{"go"}},
		{Tags: []string{}},
	}
	counts := TagCounts(posts)
	if counts["go"] != 2 || counts["web"] != 1 || len(counts) != 2 {
		t.Errorf("counts = %v", counts)
	}
}

func TestLatest(t *testing.T) {
	posts := make([]Post, 7)
	if got := len(Latest(posts, 5)); got != 5 {
		t.Errorf("len(Latest(7, 5)) = %d, want 5", got)
	}
	if got := len(Latest(posts[:3], 5)); got != 3 {
		t.Errorf("len(Latest(3, 5)) = %d, want 3", got)
	}
}

func TestIndex_ReloadKeepsPostsOnError(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "title: A\npublished: 2024-01-01\n")

	idx, err := NewIndex(dir)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	if len(idx.Posts()) != 1 {
		t.Fatalf("len(Posts) = %d, want 1", len(idx.Posts()))
	}

	writePost(t, dir, "broken.md", "title: [unclosed\n")
	if err := idx.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if len(idx.Posts()) != 1 {
		t.Errorf("posts dropped after failed reload")
	}
}

func TestIndex_Watch(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "title: A\npublished: 2024-01-01\n")

	idx, err := NewIndex(dir)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- idx.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writePost(t, dir, "b.md", "title: B\npublished: 2024-02-01\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if len(idx.Posts()) == 2 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("len(Posts) = %d after write, want 2", len(idx.Posts()))
}

func TestLoad_RejectsBadFileName(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "My Post.md", "title: Bad\npublished: 2024-01-01\n")

	if _, err := Load(dir); !errors.Is(err, ErrSlugFormat) {
		t.Errorf("Load err = %v, want ErrSlugFormat", err)
	}
}

func TestLoad_RejectsDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "foo.md", "title: Foo\npublished: 2024-01-01\n")
	writePost(t, dir, "foo.mdx", "title: Foo again\npublished: 2024-01-02\n")

	if _, err := Load(dir); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("Load err = %v, want ErrDuplicateSlug", err)
	}
}
