package errno

import (
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx/code"
)

const (
	UnAuthErrCode   = 1000
	ValidateErrCode = 1001
)

func init() {
	code.Register(
		UnAuthErrCode,
		"身份认证失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ValidateErrCode,
		"请求参数缺失或不合法",
		code.WithAffectStability(false),
	)
}
