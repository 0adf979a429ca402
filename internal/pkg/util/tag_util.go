package util

import (
	"Kazuru/internal/pkg/consts"
	"sort"
	"strings"
)

// CategoryOf maps a tag to its category and display value. Recognized
// prefixes are stripped for display; everything else is General, shown
// verbatim.
func CategoryOf(tag string) (category string, display string) {
	switch {
	case strings.HasPrefix(tag, consts.TagPrefixCopyright):
		return consts.CategoryCopyright, strings.TrimPrefix(tag, consts.TagPrefixCopyright)
	case strings.HasPrefix(tag, consts.TagPrefixCharacter):
		return consts.CategoryCharacter, strings.TrimPrefix(tag, consts.TagPrefixCharacter)
	case strings.HasPrefix(tag, consts.TagPrefixArtist):
		return consts.CategoryArtist, strings.TrimPrefix(tag, consts.TagPrefixArtist)
	default:
		return consts.CategoryGeneral, tag
	}
}

// Categories in their fixed display order.
func Categories() []string {
	return []string{
		consts.CategoryCopyright,
		consts.CategoryCharacter,
		consts.CategoryArtist,
		consts.CategoryGeneral,
	}
}

// ParseTags splits a space-delimited tag string, dropping empty entries
// and duplicates while preserving first-seen order.
func ParseTags(raw string) []string {
	fields := strings.Fields(raw)
	seen := make(map[string]struct{}, len(fields))
	tags := make([]string, 0, len(fields))
	for _, tag := range fields {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// HasAllTags reports whether set contains every entry of required.
func HasAllTags(set []string, required []string) bool {
	if len(required) == 0 {
		return true
	}
	lookup := make(map[string]struct{}, len(set))
	for _, tag := range set {
		lookup[tag] = struct{}{}
	}
	for _, tag := range required {
		if _, ok := lookup[tag]; !ok {
			return false
		}
	}
	return true
}

// TagCount is one display tag with its occurrence count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// SortTagCounts orders by count descending, ties alphabetical.
func SortTagCounts(counts []TagCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Tag < counts[j].Tag
	})
}
