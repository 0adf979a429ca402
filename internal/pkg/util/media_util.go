package util

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// URLRewriter turns raw media host delivery URLs into site-local /images/
// paths served by the media proxy, so the host's domain never reaches the
// browser. Video delivery URLs are left untouched.
type URLRewriter struct {
	pattern *regexp.Regexp
	baseURL string
}

func NewURLRewriter(cloudName, publicBaseURL string) *URLRewriter {
	return &URLRewriter{
		pattern: regexp.MustCompile(`res\.cloudinary\.com/` + regexp.QuoteMeta(cloudName) + `/image/upload/(.+)`),
		baseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Rewrite maps a host delivery URL to its public form. URLs that do not
// point at this account pass through unchanged; empty stays empty.
func (r *URLRewriter) Rewrite(url string) string {
	if url == "" {
		return ""
	}
	m := r.pattern.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return fmt.Sprintf("%s/images/%s", r.baseURL, m[1])
}

// PublicIDFromURL recovers the host object identifier from a delivery URL:
// the final folder plus file name, extension dropped. Needed when deleting
// media for posts stored before object ids were kept.
func PublicIDFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return ""
	}
	joined := strings.Join(parts[len(parts)-2:], "/")
	ext := path.Ext(joined)
	return strings.TrimSuffix(joined, ext)
}
