package repository

import (
	"gorm.io/gorm"

	"github.com/d60-Lab/viewtube/pkg/errs"
)

// ListOptions 分页与排序参数，page/pageSize 从 1 开始
type ListOptions struct {
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

// Page 一页投影结果与分页元数据
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	HasMore  bool  `json:"hasMore"`
}

// buildOrder 将外部排序键映射为 SQL 列。键不在白名单内直接失败，
// 不能把用户输入拼进 ORDER BY。
func buildOrder(sortable map[string]string, opts ListOptions, defaultExpr string) (string, error) {
	if opts.SortBy == "" {
		return defaultExpr, nil
	}
	col, ok := sortable[opts.SortBy]
	if !ok {
		return "", errs.InvalidSortField(opts.SortBy)
	}
	if opts.SortDesc {
		return col + " DESC", nil
	}
	return col + " ASC", nil
}

// paginate 在已组装好 match/join/select 的查询上执行 count + 排序 + 分页。
// 排序先于分页，保证两次写入之间翻页边界稳定。
func paginate[T any](q *gorm.DB, opts ListOptions, order string) (*Page[T], error) {
	if opts.Page < 1 || opts.PageSize < 1 {
		return nil, errs.InvalidPage()
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, errs.Storage(err)
	}

	offset := (opts.Page - 1) * opts.PageSize
	items := make([]T, 0, opts.PageSize)
	if err := q.Order(order).Offset(offset).Limit(opts.PageSize).Find(&items).Error; err != nil {
		return nil, errs.Storage(err)
	}

	return &Page[T]{
		Items:    items,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
		HasMore:  int64(offset+len(items)) < total,
	}, nil
}
