package handler

import (
	"Kazuru/internal/pkg/util"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// LegacyHandler keeps the old php-era permalinks alive. Crawlers and
// bookmarks still hit /index.php with query-string routing, so every
// recognized shape redirects to its current equivalent.
type LegacyHandler struct {
	pageSize int
}

func NewLegacyHandler(pageSize int) *LegacyHandler {
	return &LegacyHandler{
		pageSize: pageSize,
	}
}

func (s *LegacyHandler) Index(c *gin.Context) {
	if c.Query("page") != "post" {
		c.Redirect(http.StatusFound, "/posts")
		return
	}

	switch c.Query("s") {
	case "view":
		if id, err := strconv.ParseUint(c.Query("id"), 10, 64); err == nil && id > 0 {
			c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(id, 10))
			return
		}
	case "list":
		target := url.Values{}
		if tags := c.Query("tags"); tags != "" && tags != "all" {
			target.Set("tags", tags)
		}
		// pid is a post offset, not a page number
		if pid, err := strconv.Atoi(c.Query("pid")); err == nil && pid > 0 {
			target.Set("page", strconv.Itoa(util.PageFromOffset(c.Query("pid"), s.pageSize)))
		}
		location := "/posts"
		if encoded := target.Encode(); encoded != "" {
			location += "?" + encoded
		}
		c.Redirect(http.StatusFound, location)
		return
	}

	c.Redirect(http.StatusFound, "/posts")
}
