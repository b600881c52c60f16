package repository

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pkgErrors "lab-cms/pkg/errors"
)

type QueryOption func(*gorm.DB) *gorm.DB

// WithOrder 追加排序
func WithOrder(column string, desc bool) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
}

// Pageable 分页与排序，Sort为已校验过的列名
type Pageable struct {
	Page int
	Size int
	Sort string
	Asc  bool
}

// NewPageable 将驼峰排序字段转换为列名并校验是否允许排序
func NewPageable(page, size int, sortBy string, asc bool, columns []string) (Pageable, error) {
	column := lo.SnakeCase(sortBy)
	if !lo.Contains(columns, column) {
		return Pageable{}, pkgErrors.ErrInvalidSortField.WithDetail("sortBy=%s", sortBy)
	}
	return Pageable{Page: page, Size: size, Sort: column, Asc: asc}, nil
}

// Offset 偏移量
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// OrderScope 仅排序
func (p Pageable) OrderScope(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: p.Sort}, Desc: !p.Asc})
}

// Scope 排序并分页
func (p Pageable) Scope(db *gorm.DB) *gorm.DB {
	return p.OrderScope(db).Offset(p.Offset()).Limit(p.Size)
}

// Criteria 列表过滤条件，空值表示不过滤
type Criteria struct {
	Keyword  string
	Status   string
	Category string
}

// GroupCount 分组计数结果
type GroupCount struct {
	Name  string
	Count int64
}

func findPage[T any](db *gorm.DB, p Pageable) ([]*T, int64, error) {
	var items []*T
	var total int64

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*T{}, 0, nil
	}
	if err := db.Scopes(p.Scope).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func findOne[T any](db *gorm.DB, notFound *pkgErrors.AppError, message string) (*T, error) {
	var item T
	if err := db.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, message, err)
	}
	return &item, nil
}

func countBy(db *gorm.DB, column string) ([]GroupCount, error) {
	var rows []GroupCount
	err := db.Select(column + " AS name, COUNT(*) AS count").Group(column).Scan(&rows).Error
	return rows, err
}

func sumOf(db *gorm.DB, column string) (int64, error) {
	var total int64
	err := db.Select("COALESCE(SUM(" + column + "), 0)").Scan(&total).Error
	return total, err
}

// likeEscaper 转义LIKE通配符，转义符为 '!'
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern 不区分大小写的字面量包含匹配
func likePattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(keyword))) + "%"
}

// keywordScope 任一列包含关键字
func keywordScope(keyword string, columns ...string) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		pattern := likePattern(keyword)
		conds := lo.Map(columns, func(c string, _ int) string {
			return "LOWER(" + c + ") LIKE ? ESCAPE '!'"
		})
		args := lo.Map(columns, func(_ string, _ int) interface{} {
			return pattern
		})
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// containsScope 列包含字面量子串，大小写是否敏感取决于数据库排序规则
func containsScope(column, value string) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(value)+"%")
	}
}
