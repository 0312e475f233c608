package service

import (
	"ProductLobby/internal/api/dto"
	"ProductLobby/internal/model"
	"ProductLobby/internal/pkg/redis"
	"ProductLobby/internal/pkg/security"
	"ProductLobby/internal/repository"
	"context"
	"time"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) error
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateDisplayName(ctx context.Context, id uint64, displayName string) error
	UpdatePassword(ctx context.Context, id uint64, req *dto.ChangePasswordDTO) error
	BanUser(ctx context.Context, id uint64) error
	UnBanUser(ctx context.Context, id uint64) error
	CancelUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:    req.Username,
		Password:    passwordHash,
		DisplayName: req.DisplayName,
	}

	role := model.UserRole{
		UserID: user.ID,
		RoleID: 1,
	}
	roles := []*model.UserRole{&role}

	return s.userRepo.CreateUser(ctx, user, &roles)
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roleNames, err := s.getRoleNamesForUser(ctx, user)
	if err != nil {
		return nil, err
	}
	token, err := security.GenerateToken(user.ID, roleNames)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{
		Token: token,
		User:  buildUserDTO(user, roleNames),
	}, nil
}

// Logout 将 token 签名拉黑一天，覆盖 token 剩余有效期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	roleNames, err := s.getRoleNamesForUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return buildUserDTO(user, roleNames), nil
}

func (s *UserServiceImpl) UpdateDisplayName(ctx context.Context, id uint64, displayName string) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	user.DisplayName = displayName
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id uint64, req *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = security.CheckPasswordHash(req.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}
	passwordHash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = passwordHash
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserServiceImpl) BanUser(ctx context.Context, id uint64) error {
	return s.changeUserIsBanStatus(ctx, id, true)
}

func (s *UserServiceImpl) UnBanUser(ctx context.Context, id uint64) error {
	return s.changeUserIsBanStatus(ctx, id, false)
}

func (s *UserServiceImpl) CancelUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, id)
}

func (s *UserServiceImpl) getRoleNamesForUser(ctx context.Context, user *model.User) ([]string, error) {
	if len(user.UserRoles) == 0 {
		return []string{}, nil
	}
	roleIDs := make([]uint64, 0, len(user.UserRoles))
	for _, role := range user.UserRoles {
		roleIDs = append(roleIDs, role.RoleID)
	}
	roles, err := s.roleRepo.GetRoleByIDs(ctx, roleIDs)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		return nil, UnExpectedError
	}
	roleNames := make([]string, 0, len(*roles))
	for _, role := range *roles {
		roleNames = append(roleNames, role.Name)
	}
	return roleNames, nil
}

func (s *UserServiceImpl) changeUserIsBanStatus(ctx context.Context, id uint64, isBan bool) error {
	affected, err := s.userRepo.UpdateUserIsBan(ctx, id, isBan)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func buildUserDTO(user *model.User, roles []string) *dto.UserDTO {
	userID := user.ID
	username := user.Username
	displayName := user.DisplayName
	createdAt := user.CreatedAt
	return &dto.UserDTO{
		UserID:      &userID,
		Username:    &username,
		DisplayName: &displayName,
		AvatarURL:   user.AvatarURL,
		Roles:       roles,
		CreatedAt:   &createdAt,
	}
}
