package service

import (
	"Kazuru/internal/api/dto"
	"Kazuru/internal/model"
	"Kazuru/internal/pkg/consts"
	"Kazuru/internal/pkg/media"
	"Kazuru/internal/pkg/util"
	"Kazuru/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListPosts(ctx context.Context, query *dto.PostListQuery) (*dto.PostPageDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	GetPostsByUser(ctx context.Context, userID uint64, page int) (*dto.PostPageDTO, error)
	UpdatePost(ctx context.Context, userID uint64, postID uint64, update *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	mediaHost media.Host
	rewriter  *util.URLRewriter
	pageSize  int
}

func NewPostService(postRepo repository.PostRepo, mediaHost media.Host, rewriter *util.URLRewriter, pageSize int) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		mediaHost: mediaHost,
		rewriter:  rewriter,
		pageSize:  pageSize,
	}
}

// ListPosts returns one page of posts matching the required tags, newest
// first, with the total match count and tag statistics computed over the
// returned page only.
func (s *postServiceImpl) ListPosts(ctx context.Context, query *dto.PostListQuery) (*dto.PostPageDTO, error) {
	page := util.ParsePage(query.Page)
	if query.Pid != "" {
		// Legacy links carry an item offset instead of a page number.
		page = util.PageFromOffset(query.Pid, s.pageSize)
	}
	searchTags := util.ParseTags(query.Tags)

	filter := repository.PostFilter{Tags: searchTags}
	offset := (page - 1) * s.pageSize

	posts, err := s.postRepo.ListPosts(ctx, filter, offset, s.pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, s.toPostDTO(post))
	}

	return &dto.PostPageDTO{
		Items:      items,
		TotalCount: total,
		PageNumber: page,
		TotalPages: util.TotalPages(total, s.pageSize),
		PageSize:   s.pageSize,
		SearchTags: searchTags,
		TagStats:   pageTagStats(posts),
	}, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toPostDTO(post), nil
}

func (s *postServiceImpl) GetPostsByUser(ctx context.Context, userID uint64, page int) (*dto.PostPageDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.pageSize

	posts, err := s.postRepo.GetPostsByUserId(ctx, userID, offset, s.pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, s.toPostDTO(post))
	}

	return &dto.PostPageDTO{
		Items:      items,
		PageNumber: page,
		PageSize:   s.pageSize,
	}, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, userID uint64, postID uint64, update *dto.UpdatePostDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotOwner
	}

	post.Tags = util.ParseTags(update.Tags)
	post.Source = update.Source
	return s.postRepo.UpdatePost(ctx, post)
}

// DeletePost removes a post for its owner. The remote media objects are
// destroyed best-effort first; the row delete happens regardless of the
// remote outcome, keeping the store authoritative.
func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotOwner
	}

	destroyPostMedia(ctx, s.mediaHost, post)

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		log.ErrorContext(ctx, "post row delete failed", "post_id", postID, "err", err)
		return ErrPersistence
	}
	return nil
}

// destroyPostMedia issues best-effort remote deletes for a post's media
// object and its thumbnail. Failures are logged, never surfaced.
func destroyPostMedia(ctx context.Context, host media.Host, post *model.Post) {
	publicID := util.PublicIDFromURL(post.MediaURL)
	if publicID != "" {
		if err := host.Destroy(ctx, publicID, post.MediaType); err != nil {
			log.WarnContext(ctx, "remote media delete failed", "post_id", post.ID, "public_id", publicID, "err", err)
		}
	}

	if post.ThumbnailURL != nil && *post.ThumbnailURL != post.MediaURL {
		thumbID := util.PublicIDFromURL(*post.ThumbnailURL)
		if thumbID != "" {
			if err := host.Destroy(ctx, thumbID, consts.MediaTypeImage); err != nil {
				log.WarnContext(ctx, "remote thumbnail delete failed", "post_id", post.ID, "public_id", thumbID, "err", err)
			}
		}
	}
}

func (s *postServiceImpl) toPostDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.Copy(out, post)
	out.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	out.MediaURL = s.rewriter.Rewrite(post.MediaURL)
	if post.ThumbnailURL != nil {
		rewritten := s.rewriter.Rewrite(*post.ThumbnailURL)
		out.ThumbnailURL = &rewritten
	}
	if post.User.Username != "" {
		out.Username = post.User.Username
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

// pageTagStats counts tag occurrences across the given page of posts,
// partitioned by category with prefixes stripped. Counts never look past
// the page.
func pageTagStats(posts []*model.Post) []dto.TagCategoryStats {
	counts := make(map[string]map[string]int)
	for _, post := range posts {
		for _, tag := range post.Tags {
			category, display := util.CategoryOf(tag)
			if counts[category] == nil {
				counts[category] = make(map[string]int)
			}
			counts[category][display]++
		}
	}

	stats := make([]dto.TagCategoryStats, 0, len(counts))
	for _, category := range util.Categories() {
		byDisplay := counts[category]
		if len(byDisplay) == 0 {
			continue
		}
		entries := make([]util.TagCount, 0, len(byDisplay))
		for display, count := range byDisplay {
			entries = append(entries, util.TagCount{Tag: display, Count: count})
		}
		util.SortTagCounts(entries)
		stats = append(stats, dto.TagCategoryStats{Name: category, Tags: entries})
	}
	return stats
}
