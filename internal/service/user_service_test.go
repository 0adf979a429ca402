package service

import (
	"Kazuru/internal/api/config"
	"Kazuru/internal/api/dto"
	"Kazuru/internal/model"
	"Kazuru/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	config.Cfg = &config.Config{
		Site: config.SiteConfig{
			JWTSecret: "test-secret",
			PageSize:  42,
		},
	}
}

func TestRegisterSuccess(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	mockUsers.On("GetUserByUsername", mock.Anything, "alice").Return(nil, nil)
	mockUsers.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	mockUsers.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// the stored password must be a hash, never the clear text
		return u.Username == "alice" && u.Password != "hunter22"
	})).Return(nil)

	err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestRegisterUsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	mockUsers.On("GetUserByUsername", mock.Anything, "alice").Return(&model.User{ID: 1}, nil)

	err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrUsernameExist)
	mockUsers.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegisterEmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	mockUsers.On("GetUserByUsername", mock.Anything, "alice").Return(nil, nil)
	mockUsers.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: 2}, nil)

	err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrEmailExist)
}

func TestLogin(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	hash, err := security.HashPassword("hunter22")
	assert.NoError(t, err)
	user := &model.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: hash}

	mockUsers.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil)

	token, err := svc.Login(context.Background(), &dto.CredentialDTO{Username: "alice", Password: "hunter22"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := security.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	_, err = svc.Login(context.Background(), &dto.CredentialDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLoginUnknownUser(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	mockUsers.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangeEmailConflict(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	mockUsers.On("GetUserByEmail", mock.Anything, "taken@example.com").Return(&model.User{ID: 2}, nil)

	err := svc.ChangeEmail(context.Background(), 1, &dto.ChangeEmailDTO{Email: "taken@example.com"})
	assert.ErrorIs(t, err, ErrEmailExist)
}

func TestChangeEmailOwnAddressIsNoConflict(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	mockUsers.On("GetUserByEmail", mock.Anything, "same@example.com").Return(&model.User{ID: 1}, nil)
	mockUsers.On("UpdateEmail", mock.Anything, uint64(1), "same@example.com").Return(nil)

	err := svc.ChangeEmail(context.Background(), 1, &dto.ChangeEmailDTO{Email: "same@example.com"})
	assert.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	mockUsers := new(MockUserRepo)
	svc := NewUserService(mockUsers, new(MockPostRepo), new(MockMediaHost))

	hash, _ := security.HashPassword("hunter22")
	mockUsers.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Password: hash}, nil)

	err := svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordDTO{
		CurrentPassword: "wrong",
		NewPassword:     "newpass123",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
	mockUsers.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteAccountSweepsRemoteMedia(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockPosts := new(MockPostRepo)
	mockHost := new(MockMediaHost)
	svc := NewUserService(mockUsers, mockPosts, mockHost)

	mockUsers.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1}, nil)
	mockPosts.On("GetPostsByUserId", mock.Anything, uint64(1), 0, 100).Return([]*model.Post{
		{ID: 3, UserID: 1, MediaType: "image", MediaURL: "https://res.cloudinary.com/testcloud/image/upload/v1/posts/a.jpg"},
	}, nil)
	mockHost.On("Destroy", mock.Anything, "posts/a", "image").Return(nil)
	mockUsers.On("DeleteUser", mock.Anything, uint64(1)).Return(nil)

	err := svc.DeleteAccount(context.Background(), 1)
	assert.NoError(t, err)
	mockHost.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}
