package service

import (
	"Kazuru/internal/api/dto"
	"Kazuru/internal/model"
	"Kazuru/internal/pkg/util"
	"Kazuru/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPostServiceForTest(postRepo repository.PostRepo, host *MockMediaHost) PostService {
	rewriter := util.NewURLRewriter("testcloud", "https://board.example")
	return NewPostService(postRepo, host, rewriter, 42)
}

func TestListPostsPagination(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	filter := repository.PostFilter{Tags: []string{"sky"}}
	mockRepo.On("ListPosts", mock.Anything, filter, 42, 42).Return([]*model.Post{}, nil)
	mockRepo.On("CountPosts", mock.Anything, filter).Return(int64(100), nil)

	page, err := svc.ListPosts(context.Background(), &dto.PostListQuery{Page: "2", Tags: "sky"})
	assert.NoError(t, err)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, int64(100), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []string{"sky"}, page.SearchTags)
	mockRepo.AssertExpectations(t)
}

func TestListPostsLegacyOffsetWins(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	// pid=84 is an item offset, landing on page 3 regardless of page=1
	filter := repository.PostFilter{Tags: []string{}}
	mockRepo.On("ListPosts", mock.Anything, filter, 84, 42).Return([]*model.Post{}, nil)
	mockRepo.On("CountPosts", mock.Anything, filter).Return(int64(0), nil)

	page, err := svc.ListPosts(context.Background(), &dto.PostListQuery{Page: "1", Pid: "84"})
	assert.NoError(t, err)
	assert.Equal(t, 3, page.PageNumber)
	mockRepo.AssertExpectations(t)
}

func TestListPostsBadPageClampsToFirst(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	filter := repository.PostFilter{Tags: []string{}}
	mockRepo.On("ListPosts", mock.Anything, filter, 0, 42).Return([]*model.Post{}, nil)
	mockRepo.On("CountPosts", mock.Anything, filter).Return(int64(0), nil)

	page, err := svc.ListPosts(context.Background(), &dto.PostListQuery{Page: "banana"})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.PageNumber)
}

func TestListPostsTagStatsArePageLocal(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	posts := []*model.Post{
		{ID: 1, MediaType: "image", CreatedAt: time.Now(), Tags: []string{"copyright:touhou", "character:reimu", "sky"}},
		{ID: 2, MediaType: "image", CreatedAt: time.Now(), Tags: []string{"copyright:touhou", "sky", "night"}},
	}
	filter := repository.PostFilter{Tags: []string{}}
	mockRepo.On("ListPosts", mock.Anything, filter, 0, 42).Return(posts, nil)
	mockRepo.On("CountPosts", mock.Anything, filter).Return(int64(2), nil)

	page, err := svc.ListPosts(context.Background(), &dto.PostListQuery{})
	assert.NoError(t, err)

	// Artist never appears, so only three categories come back.
	assert.Len(t, page.TagStats, 3)
	assert.Equal(t, "Copyright", page.TagStats[0].Name)
	assert.Equal(t, []util.TagCount{{Tag: "touhou", Count: 2}}, page.TagStats[0].Tags)
	assert.Equal(t, "Character", page.TagStats[1].Name)
	assert.Equal(t, []util.TagCount{{Tag: "reimu", Count: 1}}, page.TagStats[1].Tags)
	assert.Equal(t, "General", page.TagStats[2].Name)
	// count desc, alpha on ties
	assert.Equal(t, []util.TagCount{{Tag: "sky", Count: 2}, {Tag: "night", Count: 1}}, page.TagStats[2].Tags)
}

func TestListPostsRewritesImageURLs(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	posts := []*model.Post{
		{
			ID:        7,
			MediaType: "image",
			MediaURL:  "https://res.cloudinary.com/testcloud/image/upload/v123/posts/abc.jpg",
			CreatedAt: time.Now(),
		},
	}
	filter := repository.PostFilter{Tags: []string{}}
	mockRepo.On("ListPosts", mock.Anything, filter, 0, 42).Return(posts, nil)
	mockRepo.On("CountPosts", mock.Anything, filter).Return(int64(1), nil)

	page, err := svc.ListPosts(context.Background(), &dto.PostListQuery{})
	assert.NoError(t, err)
	assert.Equal(t, "https://board.example/images/v123/posts/abc.jpg", page.Items[0].MediaURL)
}

func TestGetPostNotFound(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	mockRepo.On("GetPost", mock.Anything, uint64(99)).Return(nil, nil)

	_, err := svc.GetPost(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePostOwnership(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	post := &model.Post{ID: 5, UserID: 10, MediaType: "image"}
	mockRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)

	err := svc.UpdatePost(context.Background(), 11, 5, &dto.UpdatePostDTO{Tags: "sky"})
	assert.ErrorIs(t, err, ErrNotOwner)
	mockRepo.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything)
}

func TestUpdatePostNormalizesTags(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := newPostServiceForTest(mockRepo, new(MockMediaHost))

	post := &model.Post{ID: 5, UserID: 10, MediaType: "image"}
	mockRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)
	mockRepo.On("UpdatePost", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return assert.ObjectsAreEqual([]string{"sky", "night"}, p.Tags)
	})).Return(nil)

	err := svc.UpdatePost(context.Background(), 10, 5, &dto.UpdatePostDTO{Tags: "  sky   night sky "})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeletePostDestroysRemoteMedia(t *testing.T) {
	mockRepo := new(MockPostRepo)
	mockHost := new(MockMediaHost)
	svc := newPostServiceForTest(mockRepo, mockHost)

	thumb := "https://res.cloudinary.com/testcloud/image/upload/v1/posts/thumb1.jpg"
	post := &model.Post{
		ID:           5,
		UserID:       10,
		MediaType:    "video",
		MediaURL:     "https://res.cloudinary.com/testcloud/video/upload/v1/posts/vid1.mp4",
		ThumbnailURL: &thumb,
	}
	mockRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)
	mockHost.On("Destroy", mock.Anything, "posts/vid1", "video").Return(nil)
	mockHost.On("Destroy", mock.Anything, "posts/thumb1", "image").Return(nil)
	mockRepo.On("DeletePost", mock.Anything, uint64(5)).Return(nil)

	err := svc.DeletePost(context.Background(), 10, 5)
	assert.NoError(t, err)
	mockHost.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeletePostRemoteFailureStillDeletesRow(t *testing.T) {
	mockRepo := new(MockPostRepo)
	mockHost := new(MockMediaHost)
	svc := newPostServiceForTest(mockRepo, mockHost)

	post := &model.Post{
		ID:        5,
		UserID:    10,
		MediaType: "image",
		MediaURL:  "https://res.cloudinary.com/testcloud/image/upload/v1/posts/pic.jpg",
	}
	mockRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)
	mockHost.On("Destroy", mock.Anything, "posts/pic", "image").Return(assert.AnError)
	mockRepo.On("DeletePost", mock.Anything, uint64(5)).Return(nil)

	err := svc.DeletePost(context.Background(), 10, 5)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeletePostNotOwner(t *testing.T) {
	mockRepo := new(MockPostRepo)
	mockHost := new(MockMediaHost)
	svc := newPostServiceForTest(mockRepo, mockHost)

	post := &model.Post{ID: 5, UserID: 10, MediaType: "image"}
	mockRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)

	err := svc.DeletePost(context.Background(), 11, 5)
	assert.ErrorIs(t, err, ErrNotOwner)
	mockHost.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
}
