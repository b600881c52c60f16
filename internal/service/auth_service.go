package service

import (
	"go.uber.org/zap"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/pkg/crypto"
	"lab-cms/internal/pkg/logger"
	"lab-cms/internal/repository"
	pkgErrors "lab-cms/pkg/errors"
)

// AuthService 管理员校验，不签发令牌
type AuthService interface {
	ValidateAdmin(req *dto.ValidateAdminRequest) (*dto.ValidateAdminResponse, error)
	CheckUserExists(username string) (*dto.UserExistsResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	encoder  crypto.PasswordEncoder
}

func NewAuthService(userRepo repository.UserRepository, encoder crypto.PasswordEncoder) AuthService {
	return &authService{userRepo: userRepo, encoder: encoder}
}

// ValidateAdmin 用户存在、角色为ADMIN、状态为ACTIVE且密码匹配时有效，查询失败一律视为无效
func (s *authService) ValidateAdmin(req *dto.ValidateAdminRequest) (*dto.ValidateAdminResponse, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(req.Username)
	if err != nil {
		if pkgErrors.IsCode(err, pkgErrors.CodeNotFound) {
			logger.Warn("管理员校验失败: 用户不存在", zap.String("username", req.Username))
		} else {
			logger.Error("管理员校验失败: 查询用户异常", zap.String("username", req.Username), zap.Error(err))
		}
		return &dto.ValidateAdminResponse{Valid: false}, nil
	}

	valid := user.Role == model.UserRoleAdmin &&
		user.Status == model.UserStatusActive &&
		s.encoder.Matches(req.Password, user.Password)
	if !valid {
		logger.Warn("管理员校验失败", zap.String("username", user.Username),
			zap.String("role", string(user.Role)), zap.String("status", string(user.Status)))
	}
	return &dto.ValidateAdminResponse{Valid: valid}, nil
}

// CheckUserExists 按用户名或邮箱判断用户是否存在
func (s *authService) CheckUserExists(username string) (*dto.UserExistsResponse, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(username)
	if err != nil {
		return nil, err
	}
	return &dto.UserExistsResponse{Exists: exists}, nil
}
