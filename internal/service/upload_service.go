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
)

// UploadInput is one upload request after boundary validation. Media and
// Thumbnail are whatever the media host client accepts (reader, URL or
// data URI); Thumbnail is only honored for video.
type UploadInput struct {
	Media     interface{}
	Thumbnail interface{}
	MediaType string
	Duration  *float64
	Tags      []string
	Source    *string
}

type UploadService interface {
	Upload(ctx context.Context, userID uint64, in *UploadInput) (*dto.PostDTO, error)
	SignUpload(timestamp int64) (*media.SignedUpload, error)
}

type uploadServiceImpl struct {
	postRepo  repository.PostRepo
	mediaHost media.Host
	signer    media.Signer
	rewriter  *util.URLRewriter
}

func NewUploadService(postRepo repository.PostRepo, mediaHost media.Host, signer media.Signer, rewriter *util.URLRewriter) UploadService {
	return &uploadServiceImpl{
		postRepo:  postRepo,
		mediaHost: mediaHost,
		signer:    signer,
		rewriter:  rewriter,
	}
}

// Upload transfers the media to the remote host and persists the post.
// If persistence fails after a successful transfer, the uploaded objects
// are destroyed so nothing is left orphaned on the host; the persistence
// error is what reaches the caller. A crash between the two steps can
// still leak remote objects — accepted limitation of the two-step flow.
func (s *uploadServiceImpl) Upload(ctx context.Context, userID uint64, in *UploadInput) (*dto.PostDTO, error) {
	if in.Media == nil {
		return nil, ErrMediaMissing
	}
	if in.MediaType != consts.MediaTypeImage && in.MediaType != consts.MediaTypeVideo {
		return nil, ErrMediaTypeMissing
	}

	isVideo := in.MediaType == consts.MediaTypeVideo

	primary, err := s.mediaHost.Upload(ctx, media.UploadInput{
		File:           in.Media,
		ResourceType:   in.MediaType,
		Folder:         consts.MediaFolderPosts,
		EagerThumbnail: isVideo && in.Thumbnail == nil,
	})
	if err != nil {
		log.ErrorContext(ctx, "media transfer failed", "media_type", in.MediaType, "err", err)
		return nil, ErrMediaHost
	}

	var thumbnail *media.UploadResult
	if isVideo && in.Thumbnail != nil {
		thumbnail, err = s.mediaHost.Upload(ctx, media.UploadInput{
			File:         in.Thumbnail,
			ResourceType: consts.MediaTypeImage,
			Folder:       consts.MediaFolderPosts,
		})
		if err != nil {
			// The primary object is already on the host; take it back down
			// before reporting the failure.
			log.ErrorContext(ctx, "thumbnail transfer failed", "err", err)
			s.compensate(ctx, primary, nil, in.MediaType)
			return nil, ErrMediaHost
		}
	}

	post := &model.Post{
		UserID:    userID,
		MediaURL:  primary.SecureURL,
		MediaType: in.MediaType,
		Tags:      in.Tags,
		Source:    in.Source,
		CreatedAt: time.Now(),
	}
	if isVideo {
		post.Duration = in.Duration
		thumbnailURL := primary.ThumbnailURL
		if thumbnail != nil {
			thumbnailURL = thumbnail.SecureURL
		}
		if thumbnailURL == "" {
			thumbnailURL = primary.SecureURL
		}
		post.ThumbnailURL = &thumbnailURL
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "post persistence failed after transfer", "public_id", primary.PublicID, "err", err)
		s.compensate(ctx, primary, thumbnail, in.MediaType)
		return nil, ErrPersistence
	}

	log.InfoContext(ctx, "post created", "post_id", post.ID, "media_type", post.MediaType)

	out := &dto.PostDTO{
		ID:        post.ID,
		MediaURL:  s.rewriter.Rewrite(post.MediaURL),
		MediaType: post.MediaType,
		Duration:  post.Duration,
		Tags:      post.Tags,
		Source:    post.Source,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UserID:    post.UserID,
	}
	if post.ThumbnailURL != nil {
		rewritten := s.rewriter.Rewrite(*post.ThumbnailURL)
		out.ThumbnailURL = &rewritten
	}
	return out, nil
}

// compensate deletes the just-uploaded objects. Its outcome is logged and
// never surfaced; the caller keeps the error that triggered it.
func (s *uploadServiceImpl) compensate(ctx context.Context, primary, thumbnail *media.UploadResult, mediaType string) {
	if err := s.mediaHost.Destroy(ctx, primary.PublicID, mediaType); err != nil {
		log.ErrorContext(ctx, "compensating delete failed", "public_id", primary.PublicID, "err", err)
	}
	if thumbnail != nil {
		if err := s.mediaHost.Destroy(ctx, thumbnail.PublicID, consts.MediaTypeImage); err != nil {
			log.ErrorContext(ctx, "compensating thumbnail delete failed", "public_id", thumbnail.PublicID, "err", err)
		}
	}
}

// SignUpload signs direct-upload parameters for the browser.
func (s *uploadServiceImpl) SignUpload(timestamp int64) (*media.SignedUpload, error) {
	if timestamp <= 0 {
		return nil, ErrParamInvalid
	}
	return s.signer.SignUpload(timestamp, consts.MediaFolderPosts), nil
}
