// Package feed renders the post index as an RSS 2.0 document.
package feed

import (
	"fmt"
	"mime"
	"path"
	"strconv"
	"strings"

	"github.com/gorilla/feeds"

	"github.com/wakunguma/site/internal/content"
)

const fallbackImageType = "image/png"

// Channel describes the feed itself.
type Channel struct {
	Title       string
	Description string
	// Site is the absolute base URL; relative post and image URLs are
	// resolved against it.
	Site string
}

// Build renders posts, in the order given, as an RSS document.
func Build(ch Channel, posts []content.Post) ([]byte, error) {
	site := strings.TrimRight(ch.Site, "/")
	f := &feeds.Feed{
		Title:       ch.Title,
		Link:        &feeds.Link{Href: site + "/"},
		Description: ch.Description,
	}
	if len(posts) > 0 {
		f.Updated = posts[0].Published
	}

	for _, p := range posts {
		link := absolute(site, p.URL)
		item := &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: p.Synopsis,
			Created:     p.Published,
		}
		if p.Image != "" {
			item.Enclosure = &feeds.Enclosure{
				Url:    absolute(site, p.Image),
				Length: strconv.FormatInt(p.ImageSize, 10),
				Type:   imageType(p.Image),
			}
		}
		f.Items = append(f.Items, item)
	}

	out, err := f.ToRss()
	if err != nil {
		return nil, fmt.Errorf("encode rss: %w", err)
	}
	return []byte(out), nil
}

func absolute(site, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return site + "/" + strings.TrimLeft(ref, "/")
}

func imageType(ref string) string {
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(ref))); strings.HasPrefix(t, "image/") {
		return t
	}
	return fallbackImageType
}
