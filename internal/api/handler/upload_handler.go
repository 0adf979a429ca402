package handler

import (
	"Kazuru/internal/api/dto"
	"Kazuru/internal/pkg/response"
	"Kazuru/internal/pkg/util"
	"Kazuru/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadSvc service.UploadService
}

func NewUploadHandler(uploadSvc service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadSvc: uploadSvc,
	}
}

// Upload accepts a multipart form (media file plus fields) or a JSON body
// whose media is a remote URL or data URI.
func (s *UploadHandler) Upload(c *gin.Context) {
	userID := c.GetUint64("user_id")

	contentType := c.GetHeader("Content-Type")

	var in *service.UploadInput
	if strings.HasPrefix(contentType, "multipart/form-data") {
		parsed, err := s.parseMultipart(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		in = parsed
	} else {
		var req dto.UploadRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err)
			return
		}
		in = &service.UploadInput{
			MediaType: req.MediaType,
			Duration:  req.Duration,
			Tags:      util.ParseTags(req.Tags),
		}
		if req.Media != "" {
			in.Media = req.Media
		}
		if req.Source != "" {
			in.Source = &req.Source
		}
	}

	post, err := s.uploadSvc.Upload(c.Request.Context(), userID, in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *UploadHandler) parseMultipart(c *gin.Context) (*service.UploadInput, error) {
	in := &service.UploadInput{
		MediaType: c.PostForm("mediaType"),
		Tags:      util.ParseTags(c.PostForm("tags")),
	}

	file, err := c.FormFile("media")
	if err == nil {
		reader, openErr := file.Open()
		if openErr != nil {
			return nil, service.ErrParamInvalid
		}
		// The media host client consumes the reader; gin closes the
		// underlying file with the request.
		in.Media = reader
	}

	if thumb, thumbErr := c.FormFile("thumbnail"); thumbErr == nil {
		reader, openErr := thumb.Open()
		if openErr != nil {
			return nil, service.ErrParamInvalid
		}
		in.Thumbnail = reader
	}

	if raw := c.PostForm("duration"); raw != "" {
		if duration, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
			in.Duration = &duration
		}
	}
	if source := c.PostForm("source"); source != "" {
		in.Source = &source
	}

	return in, nil
}

// SignUpload issues signed parameters for a browser-direct upload.
func (s *UploadHandler) SignUpload(c *gin.Context) {
	var req dto.SignatureRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	signed, err := s.uploadSvc.SignUpload(req.Timestamp)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, signed)
}
