package service

import (
	"Kazuru/internal/api/dto"
	"Kazuru/internal/pkg/consts"
	"Kazuru/internal/pkg/util"
	"Kazuru/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strings"
)

// TagCache is a snapshot of the distinct tag union. Suggest reads through
// it when available; a nil cache or a miss falls back to a store scan.
type TagCache interface {
	GetTags(ctx context.Context) ([]string, error)
	SetTags(ctx context.Context, tags []string) error
}

type TagService interface {
	Suggest(ctx context.Context, query string) (*dto.TagSuggestionDTO, error)
}

type tagServiceImpl struct {
	postRepo repository.PostRepo
	cache    TagCache
}

func NewTagService(postRepo repository.PostRepo, cache TagCache) TagService {
	return &tagServiceImpl{
		postRepo: postRepo,
		cache:    cache,
	}
}

// Suggest returns the best-matching known tags per category for a partial
// query: tags starting with the query sort before tags merely containing
// it, alphabetical within each group, at most five per category.
func (s *tagServiceImpl) Suggest(ctx context.Context, query string) (*dto.TagSuggestionDTO, error) {
	if len(query) < consts.MinSuggestQueryLen {
		return nil, ErrQueryTooShort
	}

	candidates, err := s.candidateTags(ctx)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(query)
	var matches []string
	for _, tag := range candidates {
		if strings.Contains(strings.ToLower(tag), lowered) {
			matches = append(matches, tag)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		iStarts := strings.HasPrefix(strings.ToLower(matches[i]), lowered)
		jStarts := strings.HasPrefix(strings.ToLower(matches[j]), lowered)
		if iStarts != jStarts {
			return iStarts
		}
		return matches[i] < matches[j]
	})

	grouped := make(map[string][]string)
	for _, tag := range matches {
		category, display := util.CategoryOf(tag)
		if len(grouped[category]) >= consts.MaxSuggestPerCategory {
			continue
		}
		grouped[category] = append(grouped[category], display)
	}

	out := &dto.TagSuggestionDTO{Categories: make([]dto.TagCategoryDTO, 0, len(grouped))}
	for _, category := range util.Categories() {
		tags := grouped[category]
		if len(tags) == 0 {
			continue
		}
		out.Categories = append(out.Categories, dto.TagCategoryDTO{Name: category, Tags: tags})
	}
	return out, nil
}

func (s *tagServiceImpl) candidateTags(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		tags, err := s.cache.GetTags(ctx)
		if err == nil && len(tags) > 0 {
			return tags, nil
		}
		if err != nil {
			log.WarnContext(ctx, "tag cache read failed, scanning store", "err", err)
		}
	}

	tags, err := s.postRepo.AllTags(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(tags) > 0 {
		if err = s.cache.SetTags(ctx, tags); err != nil {
			log.WarnContext(ctx, "tag cache write failed", "err", err)
		}
	}
	return tags, nil
}
