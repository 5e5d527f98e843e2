package service

import (
	"github.com/d60-Lab/viewtube/pkg/errs"
)

// Ownable 拥有者判定能力，六种实体共用同一个授权谓词
type Ownable interface {
	OwnedBy() string
}

// authorizeOwner 唯一的授权机制：调用者即拥有者。
// 必须在确认记录存在之后调用（NotFound 优先于 Forbidden），
// 且在任何写入之前调用。
func authorizeOwner(record Ownable, callerID, entity string) error {
	if record.OwnedBy() != callerID {
		return errs.Forbidden("you are not authorized to modify this " + entity)
	}
	return nil
}
