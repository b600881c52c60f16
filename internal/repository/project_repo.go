package repository

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lab-cms/internal/model"
	pkgErrors "lab-cms/pkg/errors"
)

// ProjectSortColumns 项目允许排序的列
var ProjectSortColumns = []string{
	"id", "name", "status", "category", "budget", "progress", "display_order",
	"start_date", "end_date", "created_at", "updated_at",
}

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int64) (*model.Project, error)
	Update(project *model.Project) error
	Delete(id int64) error

	// List Category 对应项目分类，关键字仅匹配项目名称
	List(c Criteria, p Pageable) ([]*model.Project, int64, error)
	FindPublic() ([]*model.Project, error)
	FindFeaturedPublic() ([]*model.Project, error)
	FindPublicByStatus(status model.ProjectStatus) ([]*model.Project, error)
	FindPublicByCategory(category model.ProjectCategory) ([]*model.Project, error)
	FindByStatus(status model.ProjectStatus) ([]*model.Project, error)
	Search(keyword string) ([]*model.Project, error)
	FindByStartDateRange(start, end datatypes.Date) ([]*model.Project, error)
	FindByBudgetRange(min, max float64) ([]*model.Project, error)
	FindByProgressRange(min, max int) ([]*model.Project, error)

	Count() (int64, error)
	CountByStatus() ([]GroupCount, error)
	CountByCategory() ([]GroupCount, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) base() *gorm.DB {
	return r.db.Model(&model.Project{})
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64) (*model.Project, error) {
	return findOne[model.Project](r.db.Where("id = ?", id), pkgErrors.ErrProjectNotFound, "查询项目失败")
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目失败", err)
	}
	return nil
}

func (r *projectRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Project{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目失败", err)
	}
	return nil
}

func (r *projectRepository) List(c Criteria, p Pageable) ([]*model.Project, int64, error) {
	query := r.base()
	if c.Keyword != "" {
		query = query.Scopes(keywordScope(c.Keyword, "name"))
	}
	if c.Status != "" {
		query = query.Where("status = ?", c.Status)
	}
	if c.Category != "" {
		query = query.Where("category = ?", c.Category)
	}

	projects, total, err := findPage[model.Project](query, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目列表失败", err)
	}
	return projects, total, nil
}

func publicScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true).Order("display_order ASC").Order("id ASC")
}

func (r *projectRepository) FindPublic() ([]*model.Project, error) {
	return r.find("查询公开项目失败", publicScope)
}

func (r *projectRepository) FindFeaturedPublic() ([]*model.Project, error) {
	return r.find("查询特色项目失败", publicScope, func(db *gorm.DB) *gorm.DB {
		return db.Where("featured = ?", true)
	})
}

func (r *projectRepository) FindPublicByStatus(status model.ProjectStatus) ([]*model.Project, error) {
	return r.find("查询项目失败", publicScope, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}

func (r *projectRepository) FindPublicByCategory(category model.ProjectCategory) ([]*model.Project, error) {
	return r.find("按分类查询项目失败", publicScope, func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", category)
	})
}

func (r *projectRepository) FindByStatus(status model.ProjectStatus) ([]*model.Project, error) {
	return r.find("按状态查询项目失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status).Order("display_order ASC").Order("id ASC")
	})
}

func (r *projectRepository) Search(keyword string) ([]*model.Project, error) {
	return r.find("搜索项目失败", keywordScope(keyword, "name", "description", "tech_stack"),
		WithOrder("display_order", false))
}

func (r *projectRepository) FindByStartDateRange(start, end datatypes.Date) ([]*model.Project, error) {
	return r.find("按日期查询项目失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("start_date BETWEEN ? AND ?", start, end).Order("start_date ASC")
	})
}

func (r *projectRepository) FindByBudgetRange(min, max float64) ([]*model.Project, error) {
	return r.find("按预算查询项目失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("budget BETWEEN ? AND ?", min, max).Order("budget ASC")
	})
}

func (r *projectRepository) FindByProgressRange(min, max int) ([]*model.Project, error) {
	return r.find("按进度查询项目失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("progress BETWEEN ? AND ?", min, max).Order("progress ASC")
	})
}

func (r *projectRepository) find(message string, opts ...QueryOption) ([]*model.Project, error) {
	var projects []*model.Project
	query := r.base()
	for _, opt := range opts {
		query = opt(query)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, message, err)
	}
	return projects, nil
}

func (r *projectRepository) Count() (int64, error) {
	var total int64
	if err := r.base().Count(&total).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计项目数量失败", err)
	}
	return total, nil
}

func (r *projectRepository) CountByStatus() ([]GroupCount, error) {
	rows, err := countBy(r.base(), "status")
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计项目状态失败", err)
	}
	return rows, nil
}

func (r *projectRepository) CountByCategory() ([]GroupCount, error) {
	rows, err := countBy(r.base(), "category")
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计项目分类失败", err)
	}
	return rows, nil
}
