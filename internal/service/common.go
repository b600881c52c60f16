package service

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/pkg/logger"
	"lab-cms/internal/repository"
	pkgErrors "lab-cms/pkg/errors"
)

// nowFunc 便于测试替换
var nowFunc = time.Now

// FilterMode 列表过滤分支，多个条件同时出现时按优先级只取一个
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterKeywordStatus
	FilterKeyword
	FilterStatus
	FilterCategory
)

// ResolveFilter 优先级: 关键字+状态 > 关键字 > 状态 > 分类 > 无
func ResolveFilter(keyword, status, category string) FilterMode {
	hasKeyword := strings.TrimSpace(keyword) != ""
	hasStatus := strings.TrimSpace(status) != ""
	switch {
	case hasKeyword && hasStatus:
		return FilterKeywordStatus
	case hasKeyword:
		return FilterKeyword
	case hasStatus:
		return FilterStatus
	case strings.TrimSpace(category) != "":
		return FilterCategory
	default:
		return FilterNone
	}
}

// buildCriteria 按过滤分支生成查询条件，status/category 需为已校验的枚举名
func buildCriteria(mode FilterMode, keyword, status, category string) repository.Criteria {
	keyword = strings.TrimSpace(keyword)
	switch mode {
	case FilterKeywordStatus:
		return repository.Criteria{Keyword: keyword, Status: status}
	case FilterKeyword:
		return repository.Criteria{Keyword: keyword}
	case FilterStatus:
		return repository.Criteria{Status: status}
	case FilterCategory:
		return repository.Criteria{Category: category}
	default:
		return repository.Criteria{}
	}
}

// parseFilterEnum 解析过滤参数中的枚举，空串表示未指定
func parseFilterEnum[T ~string](raw string, values []T, field string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	v, ok := model.ParseEnum(raw, values)
	if !ok {
		return "", pkgErrors.Wrap(pkgErrors.CodeBadRequest, "无效的"+field+": "+raw, nil)
	}
	return string(v), nil
}

func toPageable(q *dto.PageQuery, columns []string) (repository.Pageable, error) {
	if q == nil {
		q = &dto.PageQuery{}
	}
	return repository.NewPageable(q.GetPage(), q.GetSize(), q.GetSortBy(), q.Ascending(), columns)
}

// foldCounts 分组计数转为 名称->数量，所有枚举值默认0，未知值记录后丢弃
func foldCounts[T ~string](rows []repository.GroupCount, values []T, kind string) map[string]int64 {
	counts := lo.SliceToMap(values, func(v T) (string, int64) {
		return string(v), 0
	})
	for _, row := range rows {
		if _, ok := counts[row.Name]; !ok {
			logger.Warn("统计时忽略未知枚举值", zap.String("kind", kind), zap.String("value", row.Name))
			continue
		}
		counts[row.Name] = row.Count
	}
	return counts
}

// mapSlice 批量转换
func mapSlice[T any, R any](items []T, fn func(T) R) []R {
	return lo.Map(items, func(item T, _ int) R {
		return fn(item)
	})
}

func newPage[T any, R any](items []T, total int64, p repository.Pageable, fn func(T) R) *dto.Page[R] {
	return dto.NewPage(mapSlice(items, fn), total, p.Page, p.Size)
}

func validationError(message string) error {
	return pkgErrors.New(pkgErrors.CodeValidationError, message)
}
