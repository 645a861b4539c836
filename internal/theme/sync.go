package theme

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/wakunguma/site/internal/metrics"
)

const maxSyncBody = 1 << 10

// SyncRequest is the body of POST /api/theme.
type SyncRequest struct {
	Theme string `json:"theme"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SyncHandler updates the preference cookie on behalf of client script.
type SyncHandler struct {
	cookie CookieOptions
}

// NewSyncHandler creates a SyncHandler that writes cookies with opts.
func NewSyncHandler(opts CookieOptions) *SyncHandler {
	return &SyncHandler{cookie: opts}
}

// ServeHTTP handles POST /api/theme with a {"theme": "light"|"dark"} body.
// Success is 200 with an empty body. An unreadable body is logged and answered
// with 500 and the error serialized as JSON; an unknown theme is a 400.
func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSyncBody)).Decode(&req); err != nil {
		log.Printf("theme: decode sync request: %v", err)
		metrics.ThemeSyncErrorsTotal.WithLabelValues("body").Inc()
		writeError(w, http.StatusInternalServerError, err.Error(), "bad_request_body")
		return
	}

	t, err := Parse(req.Theme)
	if err != nil {
		metrics.ThemeSyncErrorsTotal.WithLabelValues("invalid_theme").Inc()
		writeError(w, http.StatusBadRequest, ErrInvalidTheme.Error(), "invalid_theme")
		return
	}

	SetCookie(w, t, h.cookie)
	metrics.ThemeSwitchesTotal.WithLabelValues(string(t), "api").Inc()
	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message, Code: code})
}
