package repository

import (
	"gorm.io/gorm"

	"lab-cms/internal/model"
	pkgErrors "lab-cms/pkg/errors"
)

// MemberSortColumns 成员允许排序的列
var MemberSortColumns = []string{
	"id", "student_id", "name", "grade", "role", "status", "featured", "display_order", "created_at", "updated_at",
}

type MemberRepository interface {
	Create(member *model.Member) error
	FindByID(id int64) (*model.Member, error)
	FindByStudentID(studentID string) (*model.Member, error)
	ExistsByStudentID(studentID string) (bool, error)
	Update(member *model.Member) error
	Delete(id int64) error

	// List Category 对应成员角色
	List(c Criteria, p Pageable) ([]*model.Member, int64, error)
	FindActive() ([]*model.Member, error)
	FindFeatured() ([]*model.Member, error)
	FindByRole(role model.MemberRole) ([]*model.Member, error)
	FindByGrade(grade string) ([]*model.Member, error)
	Search(keyword string) ([]*model.Member, error)

	Count() (int64, error)
	CountByStatus() ([]GroupCount, error)
	CountByRole() ([]GroupCount, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) base() *gorm.DB {
	return r.db.Model(&model.Member{})
}

func (r *memberRepository) Create(member *model.Member) error {
	if err := r.db.Create(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建成员失败", err)
	}
	return nil
}

func (r *memberRepository) FindByID(id int64) (*model.Member, error) {
	return findOne[model.Member](r.db.Where("id = ?", id), pkgErrors.ErrMemberNotFound, "查询成员失败")
}

func (r *memberRepository) FindByStudentID(studentID string) (*model.Member, error) {
	return findOne[model.Member](r.db.Where("student_id = ?", studentID), pkgErrors.ErrMemberNotFound, "查询成员失败")
}

func (r *memberRepository) ExistsByStudentID(studentID string) (bool, error) {
	var count int64
	if err := r.base().Where("student_id = ?", studentID).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询学号失败", err)
	}
	return count > 0, nil
}

func (r *memberRepository) Update(member *model.Member) error {
	if err := r.db.Save(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新成员失败", err)
	}
	return nil
}

func (r *memberRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Member{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除成员失败", err)
	}
	return nil
}

func (r *memberRepository) List(c Criteria, p Pageable) ([]*model.Member, int64, error) {
	query := r.base()
	if c.Keyword != "" {
		query = query.Scopes(keywordScope(c.Keyword, "name"))
	}
	if c.Status != "" {
		query = query.Where("status = ?", c.Status)
	}
	if c.Category != "" {
		query = query.Where("role = ?", c.Category)
	}

	members, total, err := findPage[model.Member](query, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询成员列表失败", err)
	}
	return members, total, nil
}

func (r *memberRepository) FindActive() ([]*model.Member, error) {
	return r.find("查询在读成员失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", model.MemberStatusActive).Order("display_order ASC").Order("id ASC")
	})
}

func (r *memberRepository) FindFeatured() ([]*model.Member, error) {
	return r.find("查询特色成员失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("featured = ?", true).Order("display_order ASC").Order("id ASC")
	})
}

func (r *memberRepository) FindByRole(role model.MemberRole) ([]*model.Member, error) {
	return r.find("按角色查询成员失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("role = ?", role).Order("display_order ASC").Order("id ASC")
	})
}

func (r *memberRepository) FindByGrade(grade string) ([]*model.Member, error) {
	return r.find("按年级查询成员失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("grade = ?", grade).Order("display_order ASC").Order("id ASC")
	})
}

func (r *memberRepository) Search(keyword string) ([]*model.Member, error) {
	return r.find("搜索成员失败", keywordScope(keyword, "name", "student_id", "major", "research_direction"),
		WithOrder("display_order", false))
}

func (r *memberRepository) find(message string, opts ...QueryOption) ([]*model.Member, error) {
	var members []*model.Member
	query := r.base()
	for _, opt := range opts {
		query = opt(query)
	}
	if err := query.Find(&members).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, message, err)
	}
	return members, nil
}

func (r *memberRepository) Count() (int64, error) {
	var total int64
	if err := r.base().Count(&total).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计成员数量失败", err)
	}
	return total, nil
}

func (r *memberRepository) CountByStatus() ([]GroupCount, error) {
	rows, err := countBy(r.base(), "status")
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计成员状态失败", err)
	}
	return rows, nil
}

func (r *memberRepository) CountByRole() ([]GroupCount, error) {
	rows, err := countBy(r.base(), "role")
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计成员角色失败", err)
	}
	return rows, nil
}
