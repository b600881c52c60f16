package repository

import (
	"gorm.io/gorm"

	"lab-cms/internal/model"
	pkgErrors "lab-cms/pkg/errors"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int64) (*model.User, error)
	FindByIDs(ids []int64) ([]*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByUsernameOrEmail(usernameOrEmail string) (*model.User, error)
	ExistsByUsernameOrEmail(usernameOrEmail string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建用户失败", err)
	}
	return nil
}

func (r *userRepository) FindByID(id int64) (*model.User, error) {
	return findOne[model.User](r.db.Where("id = ?", id), pkgErrors.ErrUserNotFound, "查询用户失败")
}

func (r *userRepository) FindByIDs(ids []int64) ([]*model.User, error) {
	var users []*model.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询用户失败", err)
	}
	return users, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	return findOne[model.User](r.db.Where("username = ?", username), pkgErrors.ErrUserNotFound, "查询用户失败")
}

func (r *userRepository) FindByUsernameOrEmail(usernameOrEmail string) (*model.User, error) {
	return findOne[model.User](
		r.db.Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail),
		pkgErrors.ErrUserNotFound, "查询用户失败",
	)
}

func (r *userRepository) ExistsByUsernameOrEmail(usernameOrEmail string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).
		Count(&count).Error
	if err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询用户失败", err)
	}
	return count > 0, nil
}
