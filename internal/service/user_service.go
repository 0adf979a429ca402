package service

import (
	"Kazuru/internal/api/dto"
	"Kazuru/internal/model"
	"Kazuru/internal/pkg/consts"
	"Kazuru/internal/pkg/media"
	"Kazuru/internal/pkg/redis"
	"Kazuru/internal/pkg/security"
	"Kazuru/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

// accountPostsBatch page size used when sweeping a deleted account's posts.
const accountPostsBatch = 100

type UserService interface {
	Register(ctx context.Context, reg *dto.RegisterDTO) error
	Login(ctx context.Context, cred *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	ChangeEmail(ctx context.Context, id uint64, change *dto.ChangeEmailDTO) error
	ChangePassword(ctx context.Context, id uint64, change *dto.ChangePasswordDTO) error
	DeleteAccount(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo  repository.UserRepo
	postRepo  repository.PostRepo
	mediaHost media.Host
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo, mediaHost media.Host) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		postRepo:  postRepo,
		mediaHost: mediaHost,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, reg *dto.RegisterDTO) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, reg.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameExist
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, reg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExist
	}

	passwordHash, err := security.HashPassword(reg.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: reg.Username,
		Email:    reg.Email,
		Password: passwordHash,
	}
	return s.userRepo.CreateUser(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, cred *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, cred.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err = security.CheckPasswordHash(cred.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID, user.Username, user.Email)
}

// Logout denylists the token's signature until the token would have
// expired anyway.
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, "1", security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := &dto.UserDTO{}
	if err = copier.Copy(out, user); err != nil {
		return nil, err
	}
	out.UserID = user.ID
	return out, nil
}

func (s *UserServiceImpl) ChangeEmail(ctx context.Context, id uint64, change *dto.ChangeEmailDTO) error {
	existing, err := s.userRepo.GetUserByEmail(ctx, change.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return ErrEmailExist
	}
	return s.userRepo.UpdateEmail(ctx, id, change.Email)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uint64, change *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = security.CheckPasswordHash(change.CurrentPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(change.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, passwordHash)
}

// DeleteAccount removes the account and its posts. Remote media of owned
// posts is destroyed best-effort first; the row deletes cascade from the
// user either way.
func (s *UserServiceImpl) DeleteAccount(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	for offset := 0; ; offset += accountPostsBatch {
		posts, err := s.postRepo.GetPostsByUserId(ctx, id, offset, accountPostsBatch)
		if err != nil {
			log.WarnContext(ctx, "listing posts for account delete failed", "user_id", id, "err", err)
			break
		}
		for _, post := range posts {
			destroyPostMedia(ctx, s.mediaHost, post)
		}
		if len(posts) < accountPostsBatch {
			break
		}
	}

	return s.userRepo.DeleteUser(ctx, id)
}
