package handler

import (
	"Kazuru/internal/pkg/media"
	"Kazuru/internal/pkg/response"
	"Kazuru/internal/service"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

type MediaHandler struct {
	httpClient *resty.Client
	baseURL    string
}

func NewMediaHandler(client *media.Client) *MediaHandler {
	httpClient := resty.New().
		SetTimeout(30 * time.Second)

	return &MediaHandler{
		httpClient: httpClient,
		baseURL:    client.BaseURL(),
	}
}

// Serve relays a stored image from the media host so browsers only ever see
// same-origin URLs. Responses are immutable, the host never rewrites a
// public ID.
func (s *MediaHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	resp, err := s.httpClient.R().
		SetContext(c.Request.Context()).
		SetDoNotParseResponse(true).
		Get(s.baseURL + path)
	if err != nil {
		response.Error(c, service.ErrMediaHost)
		return
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	header := map[string]string{
		"Cache-Control": "public, max-age=31536000, immutable",
	}
	c.DataFromReader(
		http.StatusOK,
		resp.RawResponse.ContentLength,
		resp.Header().Get("Content-Type"),
		body,
		header,
	)
}
