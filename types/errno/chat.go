package errno

import (
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx/code"
)

const (
	ChatErrCode      = 70001
	SensitiveErrCode = 70002
)

func init() {
	code.Register(
		ChatErrCode,
		"对话生成失败",
		code.WithAffectStability(false),
	)
	code.Register(
		SensitiveErrCode,
		"内容包含敏感词",
		code.WithAffectStability(false),
	)
}
