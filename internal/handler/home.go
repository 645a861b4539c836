package handler

import (
	"net/http"

	"github.com/wakunguma/site/internal/content"
)

const homePostCount = 5

// HomePage is the template data for the landing page.
type HomePage struct {
	BasePage
	Posts []content.Post
}

// HomeHandler serves the landing page.
type HomeHandler struct {
	posts *content.Index
	site  SiteInfo
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(posts *content.Index, site SiteInfo) *HomeHandler {
	return &HomeHandler{posts: posts, site: site}
}

// Index serves GET / with the most recent posts.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, "home.html", HomePage{
		BasePage: newBasePage(r, h.site),
		Posts:    content.Latest(h.posts.Posts(), homePostCount),
	})
}
