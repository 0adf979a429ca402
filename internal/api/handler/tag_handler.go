package handler

import (
	"Kazuru/internal/pkg/response"
	"Kazuru/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{
		tagSvc: tagSvc,
	}
}

func (s *TagHandler) SearchTags(c *gin.Context) {
	query := c.Query("q")

	suggestions, err := s.tagSvc.Suggest(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, suggestions)
}
