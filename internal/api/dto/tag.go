package dto

// TagCategoryDTO autocomplete matches for one category, prefixes stripped.
type TagCategoryDTO struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// TagSuggestionDTO autocomplete response.
type TagSuggestionDTO struct {
	Categories []TagCategoryDTO `json:"categories"`
}
