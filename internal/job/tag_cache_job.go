package job

import (
	"Kazuru/internal/repository"
	"Kazuru/internal/service"
	"context"
	log "log/slog"
)

// TagCacheJob keeps the tag snapshot warm so suggestion queries rarely hit
// the posts table.
type TagCacheJob struct {
	postRepo repository.PostRepo
	tagCache service.TagCache
}

func NewTagCacheJob(postRepo repository.PostRepo, tagCache service.TagCache) *TagCacheJob {
	return &TagCacheJob{
		postRepo: postRepo,
		tagCache: tagCache,
	}
}

func (s *TagCacheJob) Run() {
	ctx := context.Background()

	tags, err := s.postRepo.AllTags(ctx)
	if err != nil {
		log.Error("failed to collect tag union", "err", err)
		return
	}

	if err = s.tagCache.SetTags(ctx, tags); err != nil {
		log.Error("failed to refresh tag snapshot", "err", err)
		return
	}

	log.Info("tag snapshot refreshed", "tag_count", len(tags))
}
