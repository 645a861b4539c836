package handler

import (
	"log"
	"net/http"
	"sort"

	"github.com/wakunguma/site/internal/content"
	"github.com/wakunguma/site/internal/feed"
)

const latestPostCount = 5

// TagCount is one row of the tag list.
type TagCount struct {
	Name  string
	Count int
}

// BlogPage is the template data for the article index.
type BlogPage struct {
	BasePage
	Posts  []content.Post
	Latest []content.Post
	Tags   []TagCount
}

// BlogHandler serves the article index, its JSON form, and the RSS feed.
type BlogHandler struct {
	posts *content.Index
	site  SiteInfo
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(posts *content.Index, site SiteInfo) *BlogHandler {
	return &BlogHandler{posts: posts, site: site}
}

// Index serves GET /blog.
func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts := h.posts.Posts()
	render(w, "blog.html", BlogPage{
		BasePage: newBasePage(r, h.site),
		Posts:    posts,
		Latest:   content.Latest(posts, latestPostCount),
		Tags:     sortedTags(content.TagCounts(posts)),
	})
}

// List serves GET /api/blog with every published post.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts := h.posts.Posts()
	if posts == nil {
		posts = []content.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// Feed serves GET /rss.xml.
func (h *BlogHandler) Feed(w http.ResponseWriter, r *http.Request) {
	out, err := feed.Build(feed.Channel{
		Title:       h.site.Title,
		Description: h.site.Description,
		Site:        h.site.URL,
	}, h.posts.Posts())
	if err != nil {
		log.Printf("handler: build feed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write(out)
}

// sortedTags orders tags by descending count, then name.
func sortedTags(counts map[string]int) []TagCount {
	tags := make([]TagCount, 0, len(counts))
	for name, n := range counts {
		tags = append(tags, TagCount{Name: name, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Name < tags[j].Name
	})
	return tags
}
