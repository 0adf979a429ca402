package repository

import (
	"Kazuru/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PostFilter restricts listing to posts whose tag set contains every
// entry of Tags. An empty Tags matches everything.
type PostFilter struct {
	Tags []string
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByUserId(ctx context.Context, userID uint64, offset, limit int) ([]*model.Post, error)
	ListPosts(ctx context.Context, filter PostFilter, offset, limit int) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int64, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	AllTags(ctx context.Context) ([]string, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostsByUserId(ctx context.Context, userID uint64, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// applyFilter adds one JSON containment clause per required tag, so a post
// matches only when its tag set is a superset of the filter.
func applyFilter(q *gorm.DB, filter PostFilter) *gorm.DB {
	for _, tag := range filter.Tags {
		q = q.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", tag)
	}
	return q
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, filter PostFilter, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	q := applyFilter(s.db.WithContext(ctx).Model(&model.Post{}), filter)
	err := q.Preload("User").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	q := applyFilter(s.db.WithContext(ctx).Model(&model.Post{}), filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{ID: post.ID}).
		Select("Tags", "Source").
		Updates(post).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

// AllTags returns the distinct union of tags across all posts. The table
// stays small enough that scanning tag sets in the application is fine.
func (s *PostRepoImpl) AllTags(ctx context.Context) ([]string, error) {
	rows := make([]model.Post, 0)
	err := s.db.WithContext(ctx).Select("tags").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, p := range rows {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}
