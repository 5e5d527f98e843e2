package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/d60-Lab/viewtube/pkg/errs"
)

// checkID 校验外部传入的标识符，必须先于任何存储查询执行，
// 避免畸形 ID 以晦涩的存储错误形式暴露出来
func checkID(field, value string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", errs.InvalidID(field)
	}
	return id.String(), nil
}

// requireText 必填文本字段：去空白后不得为空
func requireText(field, value string) (string, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", errs.Validation(field + " cannot be empty")
	}
	return s, nil
}
