package dto

import "Kazuru/internal/pkg/util"

// PostDTO one post shaped for presentation, media URLs already rewritten.
type PostDTO struct {
	ID           uint64   `json:"id"`
	MediaURL     string   `json:"media_url"`
	ThumbnailURL *string  `json:"thumbnail_url,omitempty"`
	MediaType    string   `json:"media_type"`
	Duration     *float64 `json:"duration,omitempty"`
	Tags         []string `json:"tags"`
	Source       *string  `json:"source,omitempty"`
	CreatedAt    string   `json:"created_at"`

	UserID   uint64 `json:"user_id"`
	Username string `json:"username,omitempty"`
}

// PostListQuery canonical listing request. Tags is the space-delimited
// required-tag set; Page and Pid are mutually exclusive (Pid is the legacy
// item offset and wins when present).
type PostListQuery struct {
	Page string `form:"page"`
	Pid  string `form:"pid"`
	Tags string `form:"tags"`
}

// TagCategoryStats page-local tag counts for one category, sorted by count
// descending then alphabetically, prefixes stripped.
type TagCategoryStats struct {
	Name string          `json:"name"`
	Tags []util.TagCount `json:"tags"`
}

// PostPageDTO one listing page.
type PostPageDTO struct {
	Items      []*PostDTO         `json:"items"`
	TotalCount int64              `json:"total_count"`
	PageNumber int                `json:"page_number"`
	TotalPages int                `json:"total_pages"`
	PageSize   int                `json:"page_size"`
	SearchTags []string           `json:"search_tags"`
	TagStats   []TagCategoryStats `json:"tag_stats"`
}

// UpdatePostDTO owner tag/source edit.
type UpdatePostDTO struct {
	Tags   string  `json:"tags"`
	Source *string `json:"source"`
}
