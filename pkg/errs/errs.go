// Package errs defines the error taxonomy shared by services and handlers.
// Every failure a service can return is one of these coded errors; handlers
// translate them into the response envelope without looking at storage errors.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidID   = "INVALID_ID"
	CodeValidation  = "VALIDATION_FAILED"
	CodeNotFound    = "NOT_FOUND"
	CodeForbidden   = "FORBIDDEN"
	CodeConflict    = "CONFLICT"
	CodeUpload      = "UPLOAD_FAILED"
	CodeStorage     = "STORAGE_UNAVAILABLE"
	CodeUnauthed    = "UNAUTHENTICATED"
	CodeInvalidPage = "INVALID_PAGE"
	CodeInvalidSort = "INVALID_SORT_FIELD"
)

type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is 让 errors.Is 按 Code 匹配，便于测试与调用方分类处理
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func InvalidID(field string) *Error {
	return &Error{Code: CodeInvalidID, Status: http.StatusBadRequest, Message: fmt.Sprintf("invalid %s", field)}
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

func NotFound(entity string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Status: http.StatusForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusConflict, Message: msg}
}

func UploadFailed(msg string) *Error {
	return &Error{Code: CodeUpload, Status: http.StatusInternalServerError, Message: msg}
}

func Storage(err error) *Error {
	return &Error{Code: CodeStorage, Status: http.StatusInternalServerError, Message: "storage unavailable", Err: err}
}

func Unauthenticated() *Error {
	return &Error{Code: CodeUnauthed, Status: http.StatusUnauthorized, Message: "authentication required"}
}

func InvalidPage() *Error {
	return &Error{Code: CodeInvalidPage, Status: http.StatusBadRequest, Message: "page and page_size must be positive"}
}

func InvalidSortField(field string) *Error {
	return &Error{Code: CodeInvalidSort, Status: http.StatusBadRequest, Message: fmt.Sprintf("cannot sort by %q", field)}
}

// AsError 提取 *Error；非本包错误一律按 StorageUnavailable 处理
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Storage(err)
}
