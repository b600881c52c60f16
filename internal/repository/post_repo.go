package repository

import (
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"lab-cms/internal/model"
	pkgErrors "lab-cms/pkg/errors"
)

// PostSortColumns 文章允许排序的列
var PostSortColumns = []string{
	"id", "title", "status", "featured", "view_count", "like_count", "comment_count",
	"display_order", "published_at", "created_at", "updated_at",
}

type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id int64) (*model.Post, error)
	Update(post *model.Post) error
	Delete(id int64) error

	FindPublished(p Pageable) ([]*model.Post, int64, error)
	FindByStatus(status model.PostStatus, p Pageable) ([]*model.Post, int64, error)
	SearchPublished(keyword string, p Pageable) ([]*model.Post, int64, error)
	FindFeatured() ([]*model.Post, error)
	FindLatest(limit int) ([]*model.Post, error)
	FindPublishedByTag(tag string) ([]*model.Post, error)

	IncrementLikes(id int64) error
	DecrementLikes(id int64) error
	IncrementViews(id int64) error

	Count() (int64, error)
	CountByStatus() ([]GroupCount, error)
	SumViews() (int64, error)
	SumLikes() (int64, error)
	SumComments() (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) base() *gorm.DB {
	return r.db.Model(&model.Post{})
}

func (r *postRepository) published() *gorm.DB {
	return r.base().Where("status = ?", model.PostStatusPublished)
}

func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建文章失败", err)
	}
	return nil
}

func (r *postRepository) FindByID(id int64) (*model.Post, error) {
	return findOne[model.Post](r.db.Where("id = ?", id), pkgErrors.ErrPostNotFound, "查询文章失败")
}

func (r *postRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新文章失败", err)
	}
	return nil
}

func (r *postRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Post{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除文章失败", err)
	}
	return nil
}

func (r *postRepository) FindPublished(p Pageable) ([]*model.Post, int64, error) {
	posts, total, err := findPage[model.Post](r.published(), p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询文章列表失败", err)
	}
	return posts, total, nil
}

func (r *postRepository) FindByStatus(status model.PostStatus, p Pageable) ([]*model.Post, int64, error) {
	posts, total, err := findPage[model.Post](r.base().Where("status = ?", status), p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询文章列表失败", err)
	}
	return posts, total, nil
}

func (r *postRepository) SearchPublished(keyword string, p Pageable) ([]*model.Post, int64, error) {
	query := r.published().Scopes(keywordScope(keyword, "title", "summary", "content"))
	posts, total, err := findPage[model.Post](query, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "搜索文章失败", err)
	}
	return posts, total, nil
}

func (r *postRepository) FindFeatured() ([]*model.Post, error) {
	var posts []*model.Post
	err := r.published().Where("featured = ?", true).
		Order("display_order ASC").Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询特色文章失败", err)
	}
	return posts, nil
}

func (r *postRepository) FindLatest(limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.published().Order("published_at DESC").Order("id DESC").Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询最新文章失败", err)
	}
	return posts, nil
}

// FindPublishedByTag 标签文本包含tag即匹配，区分大小写
func (r *postRepository) FindPublishedByTag(tag string) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.published().Scopes(containsScope("tags", tag)).Order("published_at DESC").Find(&posts).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "按标签查询文章失败", err)
	}
	// LIKE在多数排序规则下不区分大小写，这里再按字面量过滤一次
	return lo.Filter(posts, func(p *model.Post, _ int) bool {
		return p.Tags != nil && strings.Contains(*p.Tags, tag)
	}), nil
}

func (r *postRepository) IncrementLikes(id int64) error {
	return r.updateCounter(id, "like_count", gorm.Expr("like_count + 1"), "点赞失败")
}

// DecrementLikes 点赞数为0时保持不变
func (r *postRepository) DecrementLikes(id int64) error {
	return r.updateCounter(id, "like_count",
		gorm.Expr("CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END"), "取消点赞失败")
}

func (r *postRepository) IncrementViews(id int64) error {
	return r.updateCounter(id, "view_count", gorm.Expr("view_count + 1"), "更新浏览量失败")
}

// updateCounter 原子更新计数，不修改 updated_at
func (r *postRepository) updateCounter(id int64, column string, expr interface{}, message string) error {
	if err := r.base().Where("id = ?", id).UpdateColumn(column, expr).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, message, err)
	}
	return nil
}

func (r *postRepository) Count() (int64, error) {
	var total int64
	if err := r.base().Count(&total).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计文章数量失败", err)
	}
	return total, nil
}

func (r *postRepository) CountByStatus() ([]GroupCount, error) {
	rows, err := countBy(r.base(), "status")
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计文章状态失败", err)
	}
	return rows, nil
}

func (r *postRepository) SumViews() (int64, error)    { return r.sum("view_count") }
func (r *postRepository) SumLikes() (int64, error)    { return r.sum("like_count") }
func (r *postRepository) SumComments() (int64, error) { return r.sum("comment_count") }

func (r *postRepository) sum(column string) (int64, error) {
	total, err := sumOf(r.base(), column)
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计文章数据失败", err)
	}
	return total, nil
}
