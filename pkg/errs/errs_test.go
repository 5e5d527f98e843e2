package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByCode(t *testing.T) {
	assert.ErrorIs(t, NotFound("video"), NotFound("comment"))
	assert.NotErrorIs(t, NotFound("video"), Forbidden("nope"))

	// 包装后仍可按类别匹配
	wrapped := fmt.Errorf("handler: %w", Conflict("dup"))
	assert.ErrorIs(t, wrapped, Conflict(""))
}

func TestAsError(t *testing.T) {
	e := AsError(Forbidden("not yours"))
	assert.Equal(t, CodeForbidden, e.Code)
	assert.Equal(t, http.StatusForbidden, e.Status)

	// 未分类错误一律按存储不可用处理，不向客户端泄漏内部细节
	e = AsError(errors.New("dial tcp: connection refused"))
	assert.Equal(t, CodeStorage, e.Code)
	assert.Equal(t, "storage unavailable", e.Message)
}

func TestStorage_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	assert.ErrorIs(t, Storage(cause), cause)
}
