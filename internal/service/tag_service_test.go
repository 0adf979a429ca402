package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSuggestQueryTooShort(t *testing.T) {
	svc := NewTagService(new(MockPostRepo), nil)

	_, err := svc.Suggest(context.Background(), "a")
	assert.ErrorIs(t, err, ErrQueryTooShort)

	_, err = svc.Suggest(context.Background(), "")
	assert.ErrorIs(t, err, ErrQueryTooShort)
}

func TestSuggestPrefixBeforeSubstring(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := NewTagService(mockRepo, nil)

	mockRepo.On("AllTags", mock.Anything).Return([]string{
		"blue_sky", "sky", "skyline", "night", "skirt",
	}, nil)

	out, err := svc.Suggest(context.Background(), "sk")
	assert.NoError(t, err)
	assert.Len(t, out.Categories, 1)
	assert.Equal(t, "General", out.Categories[0].Name)
	// starts-with first, alphabetical inside each group
	assert.Equal(t, []string{"skirt", "sky", "skyline", "blue_sky"}, out.Categories[0].Tags)
}

func TestSuggestCaseInsensitive(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := NewTagService(mockRepo, nil)

	mockRepo.On("AllTags", mock.Anything).Return([]string{"Sky", "skyline"}, nil)

	out, err := svc.Suggest(context.Background(), "SK")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Sky", "skyline"}, out.Categories[0].Tags)
}

func TestSuggestGroupsByCategoryWithCap(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := NewTagService(mockRepo, nil)

	mockRepo.On("AllTags", mock.Anything).Return([]string{
		"copyright:touhou",
		"character:toad",
		"to_a", "to_b", "to_c", "to_d", "to_e", "to_f", "to_g",
	}, nil)

	out, err := svc.Suggest(context.Background(), "to")
	assert.NoError(t, err)
	assert.Len(t, out.Categories, 3)

	assert.Equal(t, "Copyright", out.Categories[0].Name)
	assert.Equal(t, []string{"touhou"}, out.Categories[0].Tags)
	assert.Equal(t, "Character", out.Categories[1].Name)
	assert.Equal(t, []string{"toad"}, out.Categories[1].Tags)
	assert.Equal(t, "General", out.Categories[2].Name)
	assert.Len(t, out.Categories[2].Tags, 5)
}

func TestSuggestReadsThroughCache(t *testing.T) {
	mockRepo := new(MockPostRepo)
	mockCache := new(MockTagCache)
	svc := NewTagService(mockRepo, mockCache)

	mockCache.On("GetTags", mock.Anything).Return([]string{"sky"}, nil)

	out, err := svc.Suggest(context.Background(), "sk")
	assert.NoError(t, err)
	assert.Equal(t, []string{"sky"}, out.Categories[0].Tags)
	mockRepo.AssertNotCalled(t, "AllTags", mock.Anything)
}

func TestSuggestCacheMissFallsBackAndWritesBack(t *testing.T) {
	mockRepo := new(MockPostRepo)
	mockCache := new(MockTagCache)
	svc := NewTagService(mockRepo, mockCache)

	mockCache.On("GetTags", mock.Anything).Return([]string{}, nil)
	mockRepo.On("AllTags", mock.Anything).Return([]string{"sky"}, nil)
	mockCache.On("SetTags", mock.Anything, []string{"sky"}).Return(nil)

	out, err := svc.Suggest(context.Background(), "sk")
	assert.NoError(t, err)
	assert.Equal(t, []string{"sky"}, out.Categories[0].Tags)
	mockCache.AssertExpectations(t)
}

func TestSuggestNoMatches(t *testing.T) {
	mockRepo := new(MockPostRepo)
	svc := NewTagService(mockRepo, nil)

	mockRepo.On("AllTags", mock.Anything).Return([]string{"night"}, nil)

	out, err := svc.Suggest(context.Background(), "zz")
	assert.NoError(t, err)
	assert.Empty(t, out.Categories)
}
