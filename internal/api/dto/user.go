package dto

import "time"

// UserDTO 用户
type UserDTO struct {
	UserID      *uint64    `json:"user_id,omitempty"`
	Username    *string    `json:"username,omitempty"`
	DisplayName *string    `json:"display_name,omitempty" validate:"omitempty,min=1,max=50"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	Roles       []string   `json:"roles,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Username    string `json:"username" binding:"required" validate:"min=6,max=20"`
	Password    string `json:"password" binding:"required" validate:"min=6,max=20"`
	DisplayName string `json:"display_name" binding:"required" validate:"min=1,max=50"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordDTO 修改密码
type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required" validate:"min=6,max=20"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=6,max=20"`
}

// LoginResultDTO 登录结果
type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
