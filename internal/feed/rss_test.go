package feed

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/wakunguma/site/internal/content"
)

// parsed is the subset of an RSS document the tests inspect.
type parsed struct {
	Version string `xml:"version,attr"`
	Channel struct {
		Link          string `xml:"link"`
		LastBuildDate string `xml:"lastBuildDate"`
		Items         []struct {
			Link        string `xml:"link"`
			GUID        string `xml:"guid"`
			Description string `xml:"description"`
			PubDate     string `xml:"pubDate"`
			Enclosure   *struct {
				URL    string `xml:"url,attr"`
				Length int64  `xml:"length,attr"`
				Type   string `xml:"type,attr"`
			} `xml:"enclosure"`
		} `xml:"item"`
	} `xml:"channel"`
}

func TestBuild(t *testing.T) {
	posts := []content.Post{
		{
			URL:       "/blog/second",
			Title:     "Second",
			Synopsis:  "The second post",
			Published: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Image:     "/images/second.jpg",
			ImageSize: 1234,
			Tags:      []string{"go"},
		},
		{
			URL:       "/blog/first",
			Title:     "First",
			Published: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Image:     "https://cdn.example.com/first.unknown",
		},
	}

	out, err := Build(Channel{Title: "Waku's blog", Description: "My personal blog", Site: "https://wakunguma.com/"}, posts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.HasPrefix(string(out), "<?xml") {
		t.Error("missing XML header")
	}

	var doc parsed
	if err := xml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if doc.Version != "2.0" {
		t.Errorf("version = %q, want 2.0", doc.Version)
	}
	if doc.Channel.Link != "https://wakunguma.com/" {
		t.Errorf("channel link = %q", doc.Channel.Link)
	}
	if len(doc.Channel.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(doc.Channel.Items))
	}

	first := doc.Channel.Items[0]
	if first.Link != "https://wakunguma.com/blog/second" {
		t.Errorf("link = %q", first.Link)
	}
	if first.GUID != first.Link {
		t.Errorf("guid = %q, want the post link", first.GUID)
	}
	if first.Description != "The second post" {
		t.Errorf("description = %q", first.Description)
	}
	if first.PubDate != "Sat, 01 Jun 2024 00:00:00 +0000" {
		t.Errorf("pubDate = %q", first.PubDate)
	}
	if first.Enclosure == nil {
		t.Fatal("enclosure missing")
	}
	if first.Enclosure.URL != "https://wakunguma.com/images/second.jpg" || first.Enclosure.Length != 1234 || first.Enclosure.Type != "image/jpeg" {
		t.Errorf("enclosure = %+v", first.Enclosure)
	}

	second := doc.Channel.Items[1]
	if second.Enclosure == nil || second.Enclosure.URL != "https://cdn.example.com/first.unknown" || second.Enclosure.Type != "image/png" {
		t.Errorf("enclosure = %+v, want absolute URL with image/png fallback", second.Enclosure)
	}
}

func TestBuild_Empty(t *testing.T) {
	out, err := Build(Channel{Title: "t", Site: "https://example.com"}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var doc parsed
	if err := xml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid XML: %v", err)
	}
	if doc.Version != "2.0" || len(doc.Channel.Items) != 0 || doc.Channel.LastBuildDate != "" {
		t.Errorf("channel = %+v, want no items", doc.Channel)
	}
}
